package constraint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"th", "Thursday"},
		{"m 2-4", "Monday 2:00 pm-4:00 pm"},
		{"f after 5pm", "Friday after 5:00 pm"},
		{"w until 10am", "Wednesday before 10:00 am"},
		{"Jan 2 26", "Jan 02, 2026"},
		{"Jan 2 26-Jan 5 26", "Jan 02 - Jan 05, 2026"},
		{"1/2/26 2:30-4", "Jan 02, 2026 2:30 pm-4:00 pm"},
		{"1/2/26 after 5pm", "Jan 02, 2026 after 5:00 pm"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			cs, err := Parse(tc.in)
			require.NoError(t, err)
			require.Len(t, cs, 1)
			assert.Equal(t, tc.want, cs[0].String())
		})
	}
}
