package wavelet

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRankMatchesBruteForce(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))

	for trial := 0; trial < 15; trial++ {
		n := 1 + rnd.Intn(500)
		seq := make([]byte, n)

		for i := range seq {
			seq[i] = byte(rnd.Intn(256))
		}

		mat := Build(seq)

		for c := 0; c < 256; c += 17 {
			expected := 0

			for i := 0; i <= n; i++ {
				require.Equal(t, expected, mat.Rank(byte(c), i), "rank(%d,%d) trial %d", c, i, trial)

				if i < n && seq[i] == byte(c) {
					expected++
				}
			}
		}
	}
}

func TestRankSumsToLength(t *testing.T) {
	seq := []byte("the quick brown fox jumps over the lazy dog")
	mat := Build(seq)

	sum := 0
	for c := 0; c < 256; c++ {
		sum += mat.Rank(byte(c), len(seq))
	}

	require.Equal(t, len(seq), sum)
}

func TestRankIsMonotone(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	seq := make([]byte, 300)

	for i := range seq {
		seq[i] = byte(rnd.Intn(256))
	}

	mat := Build(seq)

	for c := 0; c < 256; c += 31 {
		prev := 0

		for i := 0; i <= len(seq); i++ {
			r := mat.Rank(byte(c), i)
			require.GreaterOrEqual(t, r, prev)
			prev = r
		}
	}
}

func TestAccessReconstructsSequence(t *testing.T) {
	seq := []byte("mississippi")
	mat := Build(seq)

	for i, want := range seq {
		require.Equal(t, want, mat.Access(i))
	}
}
