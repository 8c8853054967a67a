package columns

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePrefersExactName(t *testing.T) {
	cols := []string{"NOMBRE DE LA IE", "PROVINCIA", "NOMBRE_IE"}
	res := Institution.Resolve(cols)
	assert.True(t, res.Resolved)
	assert.Equal(t, "NOMBRE_IE", res.Column)
	assert.NoError(t, res.Err())
}

func TestResolveFirstSubstringMatchInColumnOrder(t *testing.T) {
	cols := []string{"CODIGO", "I.E. DESTINO", "NOMBRE INSTITUCION"}
	res := Institution.Resolve(cols)
	assert.Equal(t, "I.E. DESTINO", res.Column)
	assert.Equal(t, "contains:NOMBRE|INSTITUCION|I.E.", res.Rule)
}

func TestResolveMatchesAccentedColumn(t *testing.T) {
	res := Institution.Resolve([]string{"PROVINCIA", "INSTITUCIÓN EDUCATIVA"})
	assert.True(t, res.Resolved)
	assert.Equal(t, "INSTITUCIÓN EDUCATIVA", res.Column)
}

func TestResolveIsCaseSensitive(t *testing.T) {
	res := Institution.Resolve([]string{"nombre_ie", "Institucion"})
	assert.False(t, res.Resolved)
	assert.True(t, errors.Is(res.Err(), ErrNotResolved))
}

func TestResolveLevelFallback(t *testing.T) {
	res := Level.Resolve([]string{"PROVINCIA", "NIVEL / CICLO / PROGRAMA", "SUBNIVEL"})
	assert.Equal(t, "NIVEL / CICLO / PROGRAMA", res.Column)

	res = Level.Resolve([]string{"PROVINCIA"})
	assert.False(t, res.Resolved)
	assert.Empty(t, res.Column)
}

func TestResolverPriorityOrderIndependentOfDeclaration(t *testing.T) {
	r := NewResolver("x", Containing(5, "B"), Exact(1, "AB"))
	res := r.Resolve([]string{"B1", "AB"})
	assert.Equal(t, "AB", res.Column)
}

func TestFold(t *testing.T) {
	assert.Equal(t, "CODIGO DE PLAZA", Fold("CÓDIGO DE PLAZA"))
	assert.Equal(t, "CANETE", Fold("CAÑETE"))
	assert.Equal(t, "plain", Fold("plain"))
}
