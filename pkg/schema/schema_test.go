package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coronium/isiscb-jsonld-conversion/pkg/schema"
)

func TestAllModels(t *testing.T) {
	models := schema.AllModels()
	require.Len(t, models, 2)
}

func TestDDLGenerators(t *testing.T) {
	var gens = []schema.DDLGenerator{
		schema.Document{},
		schema.ConversionRun{},
	}

	names := make(map[string]bool)
	for _, g := range gens {
		name := g.TableName()
		assert.False(t, names[name], "duplicate table %s", name)
		names[name] = true

		ddl := g.TableDDL()
		assert.Contains(t, ddl, "CREATE TABLE "+name)
		assert.Contains(t, ddl, "id UUID PRIMARY KEY")

		for _, idx := range g.IndexDDL() {
			assert.Contains(t, idx, name)
		}
	}
}

func TestDocumentDDL(t *testing.T) {
	ddl := schema.Document{}.TableDDL()
	assert.Contains(t, ddl, "record_id VARCHAR(50) NOT NULL")
	assert.Contains(t, ddl, "doc JSONB NOT NULL")
	assert.Len(t, schema.Document{}.IndexDDL(), 2)
}
