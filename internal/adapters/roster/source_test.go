package roster

import (
	"testing"

	csvroster "github.com/bnema/teambuilder-cli/internal/adapters/roster/csv"
	yamlroster "github.com/bnema/teambuilder-cli/internal/adapters/roster/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForPath(t *testing.T) {
	source, err := ForPath("students.csv")
	require.NoError(t, err)
	assert.IsType(t, &csvroster.Reader{}, source)

	source, err = ForPath("class.YML")
	require.NoError(t, err)
	assert.IsType(t, &yamlroster.Reader{}, source)

	_, err = ForPath("class.xlsx")
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}
