package analyze

import (
	"context"
	"go/constant"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enumrepr/internal/attr"
	"enumrepr/internal/diagnostic"
)

func loadTestdata(t *testing.T) *Package {
	t.Helper()

	pkgs, err := NewAnalyzer("", nil, false).LoadPackages(context.Background(), "./testdata/enums")
	require.NoError(t, err)
	require.Len(t, pkgs, 1)

	return pkgs[0]
}

func variantNames(decl attr.EnumDecl) []string {
	var names []string
	for _, v := range decl.Variants {
		names = append(names, v.Name)
	}

	return names
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	pkgs, err := NewAnalyzer("", nil, false).LoadPackages(context.Background(), "enumrepr/examples/conversions")
	require.NoError(t, err)
	require.Len(t, pkgs, 1)

	pkg := pkgs[0]
	assert.Equal(t, "enumrepr/examples/conversions", pkg.Path)
	assert.Equal(t, "conversions", pkg.Name)
	assert.NotEmpty(t, pkg.Dir)
	assert.True(t, pkg.Defines("Sparse"))
	assert.False(t, pkg.Defines("SparseTen"))
	assert.False(t, pkg.Defines("Nope"))
}

func TestAnalyzer_LoadPackages_Missing(t *testing.T) {
	_, err := NewAnalyzer("", nil, false).LoadPackages(context.Background(), "./testdata/does-not-exist")
	assert.Error(t, err)
}

func TestPackage_ReadEnums_Grouped(t *testing.T) {
	pkg := loadTestdata(t)
	require.NoError(t, pkg.ReadEnums([]string{"Level"}))
	require.Len(t, pkg.Enums, 1)

	decl := pkg.Enums[0]
	assert.Equal(t, "Level", decl.Name)
	require.Len(t, decl.Attributes, 3, spew.Sdump(decl.Attributes))

	assert.Equal(t, attr.KindRepr, decl.Attributes[0].Kind)
	assert.Equal(t, []string{"int64"}, decl.Attributes[0].Repr)

	assert.Equal(t, attr.KindAny, decl.Attributes[1].Kind)
	assert.Equal(t, []attr.Token{
		attr.Ident("enumrepr"),
		attr.Group(
			attr.Ident("panic_into"), attr.Group(attr.Ident("uint8")),
			attr.Ident("panic_into"), attr.Group(attr.Ident("int")),
		),
	}, decl.Attributes[1].Tokens)

	assert.Equal(t, attr.KindAny, decl.Attributes[2].Kind)
	assert.Equal(t, attr.Ident("go"), decl.Attributes[2].Tokens[0])

	// declaration order, unexported constants included
	assert.Equal(t, []string{"LevelHigh", "LevelLow", "levelMid"}, variantNames(decl))
	assert.Equal(t, constant.MakeInt64(3).ExactString(), decl.Variants[0].Value.ExactString())
}

func TestPackage_ReadEnums_DocOnDeclaration(t *testing.T) {
	pkg := loadTestdata(t)
	require.NoError(t, pkg.ReadEnums([]string{"Flag"}))

	decl := pkg.Enums[0]
	require.Len(t, decl.Attributes, 2)
	assert.Contains(t, []string{"byte", "uint8"}, decl.Attributes[0].Repr[0])
	assert.Equal(t, attr.Ident("enumrepr"), decl.Attributes[1].Tokens[0])
	assert.Equal(t, []string{"FlagOn", "FlagOff"}, variantNames(decl))
}

func TestPackage_ReadEnums_NoVariants(t *testing.T) {
	pkg := loadTestdata(t)
	require.NoError(t, pkg.ReadEnums([]string{"NoDoc"}))

	decl := pkg.Enums[0]
	assert.Len(t, decl.Attributes, 1)
	assert.Empty(t, decl.Variants)

	require.Len(t, pkg.Diagnostics.Infos, 1)
	assert.Equal(t, diagnostic.CodeNoVariants, pkg.Diagnostics.Infos[0].Code)
}

func TestPackage_ReadEnums_DuplicateDiscriminant(t *testing.T) {
	pkg := loadTestdata(t)
	require.NoError(t, pkg.ReadEnums([]string{"Dup"}))

	assert.Equal(t, []string{"DupA", "DupB", "DupC"}, variantNames(pkg.Enums[0]))

	require.Len(t, pkg.Diagnostics.Infos, 1)
	info := pkg.Diagnostics.Infos[0]
	assert.Equal(t, diagnostic.CodeDuplicateDiscriminant, info.Code)
	assert.Equal(t, "DupB", info.Variant)
	assert.Equal(t, "DupB repeats the discriminant 1 of DupA", info.Message)
}

func TestPackage_ReadEnums_Errors(t *testing.T) {
	tests := []struct {
		typeName string
		contains string
		notEnum  bool
	}{
		{typeName: "Nope", contains: "type Nope not found"},
		{typeName: "Name", contains: "Name has underlying type string", notEnum: true},
		{typeName: "Alias", contains: "Alias is not a defined type", notEnum: true},
		{typeName: "Wrapper", contains: "Wrapper has underlying type struct{}", notEnum: true},
		{typeName: "LevelHigh", contains: "LevelHigh is not a defined type", notEnum: true},
		{typeName: "Missing", contains: "malformed directive: directive panic_into has no argument list"},
		{typeName: "Unclosed", contains: "malformed directive: unclosed '('"},
	}

	pkg := loadTestdata(t)

	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			err := pkg.ReadEnums([]string{tt.typeName})
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.contains)
			assert.ErrorContains(t, err, "enumrepr/internal/analyze/testdata/enums."+tt.typeName)

			if tt.notEnum {
				assert.ErrorIs(t, err, ErrNotEnum)
			}
		})
	}
}

func TestPackage_ReadEnums_ReportsEveryFailure(t *testing.T) {
	pkg := loadTestdata(t)

	err := pkg.ReadEnums([]string{"Name", "Level", "Wrapper"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotEnum)

	assert.Equal(t, []string{"Level"}, enumNames(pkg.Enums))

	require.Len(t, pkg.Diagnostics.Errors, 2)
	assert.Equal(t, diagnostic.CodeInvalidEnum, pkg.Diagnostics.Errors[0].Code)
	assert.Equal(t, "Name", pkg.Diagnostics.Errors[0].Enum)
	assert.Equal(t, "Wrapper", pkg.Diagnostics.Errors[1].Enum)
	assert.Contains(t, pkg.Diagnostics.Errors[1].Message, "Wrapper has underlying type struct{}")
}

func enumNames(decls []attr.EnumDecl) []string {
	var names []string
	for _, d := range decls {
		names = append(names, d.Name)
	}

	return names
}

func TestPackage_IntegerTypes(t *testing.T) {
	pkg := loadTestdata(t)

	assert.Equal(t, []string{"Dup", "Flag", "Level", "Missing", "NoDoc", "Unclosed"}, pkg.IntegerTypes())
}
