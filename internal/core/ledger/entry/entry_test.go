package entry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
		code string
	}{
		{TypeAccountRoot, "AccountRoot", "0061"},
		{TypeRippleState, "RippleState", "0072"},
		{TypeDirectoryNode, "DirectoryNode", "0064"},
		{TypeNegativeUNL, "NegativeUNL", "004E"},
		{TypeHookState, "HookState", "0076"},
		{TypeVault, "Vault", "0084"},
		{Type(0xffff), "Unknown(0xffff)", "FFFF"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.String())
			assert.Equal(t, tt.code, tt.typ.Code())
		})
	}
}

func TestTypeNamesUnique(t *testing.T) {
	seen := make(map[string]Type, len(names))
	for typ, name := range names {
		prev, dup := seen[name]
		assert.False(t, dup, "%s used by %#x and %#x", name, uint16(prev), uint16(typ))
		seen[name] = typ
	}
}
