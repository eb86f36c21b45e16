//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package validate

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsColor(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"#fff", true},
		{"#0D0716", true},
		{"0", true},
		{"255", true},
		{"256", false},
		{"-1", false},
		{"#12345", false},
		{"red", false},
		{"bg-black", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsColor(tt.in))
		})
	}
}

func TestStruct_CustomTags(t *testing.T) {
	type nav struct {
		Ease  string `validate:"omitempty,ease"`
		Color string `validate:"color"`
	}

	require.NoError(t, Struct(nav{}))
	require.NoError(t, Struct(nav{Ease: "power3.out", Color: "#171717"}))
	require.NoError(t, Struct(nav{Ease: "Spring", Color: "42"}))

	err := Struct(nav{Ease: "wobble"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'ease' tag")

	err = Struct(nav{Color: "purple"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'color' tag")
}

func TestVar(t *testing.T) {
	require.NoError(t, Var(80, "gt=0"))
	require.Error(t, Var(0, "gt=0"))
	require.NoError(t, Var("expo.inOut", "ease"))
}

func TestMustRegister(t *testing.T) {
	v := validator.New()
	require.NotPanics(t, func() { mustRegister(v, customTags) })
	require.NoError(t, v.Var("sine.out", "ease"))

	always := func(validator.FieldLevel) bool { return true }
	assert.PanicsWithValue(t,
		`validate: register "": function Key cannot be empty`,
		func() { mustRegister(validator.New(), map[string]validator.Func{"": always}) },
	)
	assert.Panics(t, func() { mustRegister(validator.New(), map[string]validator.Func{"nil": nil}) })
}
