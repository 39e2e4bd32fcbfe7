package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeSpace(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{input: "  one of the\n groups\tof stars  ", expected: "one of the groups of stars"},
		{input: "the Milky Way .", expected: "the Milky Way."},
		{input: "stars , planets ; and moons", expected: "stars, planets; and moons"},
		{input: "a galaxy ( such as ours )", expected: "a galaxy (such as ours)"},
		{input: "", expected: ""},
		{input: " \n\t ", expected: ""},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, NormalizeSpace(test.input), "%q", test.input)
	}
}
