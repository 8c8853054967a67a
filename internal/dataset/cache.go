package dataset

import (
	"path/filepath"
	"sync"
)

// Cache memoizes loads by cleaned file path for the life of the process.
// Entries are only dropped by Invalidate or Clear; a file changed on disk is not re-read until then.
// An absent coordinate file is memoized as absent as well.
type Cache struct {
	mu        sync.Mutex
	opts      Options
	vacancies map[string]*Table
	districts map[string]*DistrictIndex
}

func NewCache(opts Options) *Cache {
	return &Cache{
		opts:      opts,
		vacancies: make(map[string]*Table),
		districts: make(map[string]*DistrictIndex),
	}
}

// Vacancies returns the memoized table for path, loading it on first use. Failed loads are not memoized.
func (c *Cache) Vacancies(path string) (*Table, error) {
	key := filepath.Clean(path)
	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.vacancies[key]; ok {
		return t, nil
	}
	t, err := LoadVacancies(path, c.opts)
	if err != nil {
		return nil, err
	}
	c.vacancies[key] = t
	return t, nil
}

// Districts returns the memoized coordinate index for path; nil means the file was absent.
func (c *Cache) Districts(path string) (*DistrictIndex, error) {
	key := filepath.Clean(path)
	c.mu.Lock()
	defer c.mu.Unlock()
	if d, ok := c.districts[key]; ok {
		return d, nil
	}
	d, err := LoadDistrictCoordinates(path, c.opts)
	if err != nil {
		return nil, err
	}
	c.districts[key] = d
	return d, nil
}

// Invalidate drops every entry cached for path.
func (c *Cache) Invalidate(path string) {
	key := filepath.Clean(path)
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.vacancies, key)
	delete(c.districts, key)
}

func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vacancies = make(map[string]*Table)
	c.districts = make(map[string]*DistrictIndex)
}
