package bitops

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinMax(t *testing.T) {
	assert.Equal(t, 1, Min(1, 2))
	assert.Equal(t, 1, Min(2, 1))
	assert.Equal(t, -5, Min(-5, 5))
	assert.Equal(t, 2, Max(1, 2))
	assert.Equal(t, 2, Max(2, 1))
	assert.Equal(t, 5, Max(-5, 5))
	for i := 0; i < 1000; i++ {
		a, b := rand.Int63(), rand.Int63()
		assert.Equal(t, Min(a, b), Min(b, a))
		assert.Equal(t, Max(a, b), Max(b, a))
		assert.LessOrEqual(t, Min(a, b), Max(a, b))
	}
}

func TestAddMod(t *testing.T) {
	assert.Equal(t, uint(3), AddMod(uint(1), 2, 7))
	assert.Equal(t, uint(1), AddMod(uint(5), 3, 7))
	assert.Equal(t, uint(0), AddMod(uint(3), 4, 7))
	assert.Equal(t, 6, AddMod(3, 3, 7))
	assert.Equal(t, 2, AddMod(6, 3, 7))
	const modulo = uint64(1_000_003)
	for i := 0; i < 1000; i++ {
		a, b := rand.Uint64()%modulo, rand.Uint64()%modulo
		assert.Equal(t, (a+b)%modulo, AddMod(a, b, modulo))
	}
}

func TestRoundUpToPowerOfTwo(t *testing.T) {
	assert.Equal(t, 1, RoundUpToPowerOfTwo(0))
	assert.Equal(t, 1, RoundUpToPowerOfTwo(1))
	assert.Equal(t, 2, RoundUpToPowerOfTwo(2))
	assert.Equal(t, 4, RoundUpToPowerOfTwo(3))
	assert.Equal(t, 8, RoundUpToPowerOfTwo(5))
	assert.Equal(t, 1024, RoundUpToPowerOfTwo(1000))
	assert.Equal(t, int64(1<<33), RoundUpToPowerOfTwo(int64(1<<33-1)))
	for i := 0; i < 1000; i++ {
		n := rand.Int31n(1 << 30)
		r := RoundUpToPowerOfTwo(n)
		assert.True(t, IsPowerOfTwo(r))
		assert.GreaterOrEqual(t, r, n)
		if r > 1 {
			assert.Less(t, r/2, n)
		}
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	assert.False(t, IsPowerOfTwo(0))
	assert.False(t, IsPowerOfTwo(-4))
	assert.True(t, IsPowerOfTwo(1))
	assert.True(t, IsPowerOfTwo(2))
	assert.False(t, IsPowerOfTwo(6))
	assert.True(t, IsPowerOfTwo(1<<20))
}

func TestOnesCount(t *testing.T) {
	assert.Equal(t, 0, OnesCount(uint(0)))
	assert.Equal(t, 1, OnesCount(uint(16)))
	assert.Equal(t, 3, OnesCount(uint8(0b10101)))
	assert.Equal(t, 64, OnesCount(uint64(1<<64-1)))
}
