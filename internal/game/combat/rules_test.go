package combat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/arcalc/internal/model"
)

func TestAdjustForTwoHanding(t *testing.T) {
	tests := []struct {
		str  int
		want int
	}{
		{1, 1},
		{10, 15},
		{15, 22},
		{27, 40},
		{99, 148},
	}

	for _, tt := range tests {
		in := model.Attributes{Str: tt.str, Dex: 7, Int: 8, Fai: 9, Arc: 11}
		got := AdjustForTwoHanding(in)
		if got.Str != tt.want {
			t.Errorf("AdjustForTwoHanding(str=%d).Str = %d, want %d", tt.str, got.Str, tt.want)
		}
		assert.Equal(t, in.With(model.AttributeStr, tt.want), got, "only strength changes")
		assert.Equal(t, tt.str, in.Str, "input is not modified")
	}
}

func TestRules_Validate(t *testing.T) {
	assert.NoError(t, DefaultRules().Validate())

	bad := []Rules{
		{TwoHandingMultiplier: 0.5, IneffectivePenalty: 0.4},
		{TwoHandingMultiplier: math.NaN(), IneffectivePenalty: 0.4},
		{TwoHandingMultiplier: 1.5, IneffectivePenalty: -0.1},
		{TwoHandingMultiplier: 1.5, IneffectivePenalty: 1.1},
	}
	for _, r := range bad {
		assert.ErrorIs(t, r.Validate(), model.ErrInvalidConfig)
		_, err := NewCalculator(r)
		assert.Error(t, err)
	}
}
