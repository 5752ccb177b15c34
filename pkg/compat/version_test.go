package compat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareVersions_Ordering(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		want int // sign only
	}{
		{"patch greater", "1.8.3", "1.5.0", 1},
		{"patch less", "1.5.0", "1.8.3", -1},
		{"equal", "2.5.0", "2.5.0", 0},
		{"major wins over minor", "2.0.0", "1.99.99", 1},
		{"missing trailing component is zero", "1.2", "1.2.0", 0},
		{"shorter but greater", "1.3", "1.2.9", 1},
		{"four components", "1.2.3.1", "1.2.3", 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CompareVersions(tc.a, tc.b)
			switch tc.want {
			case 1:
				assert.Positive(t, got)
			case -1:
				assert.Negative(t, got)
			default:
				assert.Zero(t, got)
			}
		})
	}
}

func TestCompareVersions_Antisymmetry(t *testing.T) {
	pairs := [][2]string{
		{"1.8.3", "1.5.0"},
		{"0.5.9", "0.5.11"},
		{"2.5.0", "2.5.0"},
		{"1.0.0-alpha", "1.0.1"},
	}
	for _, pair := range pairs {
		ab := CompareVersions(pair[0], pair[1])
		ba := CompareVersions(pair[1], pair[0])
		if ab > 0 {
			assert.Negative(t, ba, "compare(%s,%s)", pair[1], pair[0])
		} else if ab < 0 {
			assert.Positive(t, ba, "compare(%s,%s)", pair[1], pair[0])
		} else {
			assert.Zero(t, ba, "compare(%s,%s)", pair[1], pair[0])
		}
	}
}

func TestCompareVersions_SuffixesIgnored(t *testing.T) {
	assert.Zero(t, CompareVersions("1.2.0-beta", "1.2.0"))
	assert.Zero(t, CompareVersions("1.2.0+build.5", "1.2.0"))
	assert.Zero(t, CompareVersions("1.2.0-rc.1", "1.2.0+abc"))
	assert.Positive(t, CompareVersions("1.2.1-alpha", "1.2.0"))
}

func TestCompareVersions_MalformedComponentsParseAsZero(t *testing.T) {
	// Non-numeric components never raise, they compare as zero.
	assert.Zero(t, CompareVersions("1.x.0", "1.0.0"))
	assert.Negative(t, CompareVersions("abc", "0.0.1"))
	assert.Zero(t, CompareVersions("", "0"))
}
