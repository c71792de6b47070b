package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyIsTotalAndPeriodic(t *testing.T) {
	for total := uint(0); total < 200; total++ {
		r := Classify(total)
		assert.NotNil(t, r)
		assert.Equal(t, total%8, r.Class(), "Classify(%d)", total)
		assert.Equal(t, r, Classify(total+8), "Classify(%d) != Classify(%d)", total, total+8)
	}
}

func TestClassificationTableIsFixed(t *testing.T) {
	want := []Residue{Mod0, Mod1, Mod2, Mod3, Mod4, Mod5, Mod6, Mod7}
	for i, r := range want {
		assert.Equal(t, r, Classify(uint(i)))
	}
}

// ByteAligned must be held by the class-0 residue and by no other.
// Exhaustive over all 8 classes.
func TestByteAlignedCapability(t *testing.T) {
	for class := uint(0); class < 8; class++ {
		r := Classify(class)
		if class == 0 {
			assert.True(t, Aligned(r), "mod%d must hold ByteAligned", class)
			_, ok := r.(ByteAligned)
			assert.True(t, ok)
		} else {
			assert.False(t, Aligned(r), "mod%d must not hold ByteAligned", class)
			_, ok := r.(ByteAligned)
			assert.False(t, ok)
		}
	}
}
