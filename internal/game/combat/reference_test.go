package combat

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/arcalc/internal/data"
	"github.com/udisondev/arcalc/internal/model"
)

// Uchigatana +0: physical 115, Str D (35), Dex D (55), requires 11 Str / 15 Dex.
func loadUchigatana(t *testing.T) *model.Weapon {
	t.Helper()
	doc, err := os.ReadFile(filepath.Join("testdata", "uchigatana_plus0.json"))
	require.NoError(t, err)
	w, err := data.DecodeWeapon(doc)
	require.NoError(t, err)
	return w
}

func TestComputeAttack_UchigatanaReference(t *testing.T) {
	w := loadUchigatana(t)

	tests := []struct {
		name        string
		attrs       model.Attributes
		scaling     float64
		penalty     float64
		displayed   int
		ineffective []model.Attribute
	}{
		{
			// 115*0.35*25/100 + 115*0.55*75/100
			name:      "str 18 dex 60",
			attrs:     model.Attributes{Str: 18, Dex: 60, Int: 10, Fai: 10, Arc: 10},
			scaling:   57.5,
			displayed: 172,
		},
		{
			// curve0(11) = 25*(10/17)^1.2, curve0(15) = 25*(14/17)^1.2
			name:      "requirements met exactly",
			attrs:     model.Attributes{Str: 11, Dex: 15, Int: 10, Fai: 10, Arc: 10},
			scaling:   115*0.35*25*math.Pow(10.0/17, 1.2)/100 + 115*0.55*25*math.Pow(14.0/17, 1.2)/100,
			displayed: 132,
		},
		{
			name:        "dex one short",
			attrs:       model.Attributes{Str: 11, Dex: 14, Int: 10, Fai: 10, Arc: 10},
			penalty:     46,
			displayed:   69,
			ineffective: []model.Attribute{model.AttributeDex},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ComputeAttack(w, tt.attrs, 0)
			require.NoError(t, err)

			phys := result.AttackRating[model.DamageTypePhysical]
			assert.Equal(t, 115.0, phys.Base)
			assert.InDelta(t, tt.scaling, phys.Scaling, 1e-9)
			assert.InDelta(t, tt.penalty, phys.Penalty, 1e-9)
			assert.Equal(t, tt.displayed, int(math.Floor(result.TotalAttack())))
			assert.Equal(t, tt.ineffective, result.IneffectiveAttributes)
			assert.Equal(t, 45.0, result.PassiveBuildup[model.PassiveBleed])
		})
	}
}
