package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	cmd := Create()

	require.NotNil(t, cmd)
	assert.Equal(t, "create", cmd.Use)
	assert.NotNil(t, cmd.RunE)
}

func TestCreate_Flags(t *testing.T) {
	cmd := Create()

	file := cmd.Flags().Lookup("file")
	require.NotNil(t, file)
	assert.Equal(t, "f", file.Shorthand)
	assert.NotNil(t, cmd.Flags().Lookup("save"))
	assert.NotNil(t, cmd.Flags().Lookup("auto-publish"))
}

func TestSubmit_Flags(t *testing.T) {
	cmd := Submit()

	require.NotNil(t, cmd.Flags().Lookup("file"))
	assert.NotNil(t, cmd.Flags().Lookup("publish"))
	assert.NotNil(t, cmd.Flags().Lookup("auto-publish"))
}

func TestSubmit_RequiresFile(t *testing.T) {
	root := Root()
	root.SetArgs([]string{"submit"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "file" not set`)
}

func TestValidate_RequiresFile(t *testing.T) {
	root := Root()
	root.SetArgs([]string{"validate"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "file" not set`)
}
