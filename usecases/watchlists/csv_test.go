package watchlists

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vigiehq/vigie-backend/models"
)

func csvDocument(data string) models.WatchlistDocument {
	return models.WatchlistDocument{
		SourceLabel: "custom_list.csv",
		Kind:        models.DocumentKindCSV,
		Data:        []byte(data),
	}
}

func TestParseCsvDocument(t *testing.T) {
	t.Run("name type and country columns", func(t *testing.T) {
		entities, err := parseCsvDocument(csvDocument(
			"name,type,country\n" +
				"Viktor Bout,Individual,France\n" +
				"Wagner Group,Entity,\n"))
		require.NoError(t, err)
		require.Len(t, entities, 2)

		assert.Equal(t, []string{"Viktor Bout"}, entities[0].Names)
		assert.Equal(t, models.EntityKindIndividual, entities[0].EntityKind)
		assert.Equal(t, []string{"FR"}, entities[0].Countries)
		assert.Equal(t, models.ListTypeGeneric, entities[0].ListType)
		assert.Equal(t, "custom_list.csv", entities[0].Source)

		assert.Equal(t, []string{"Wagner Group"}, entities[1].Names)
		assert.Equal(t, models.EntityKindCompanyOrEntity, entities[1].EntityKind)
		assert.Empty(t, entities[1].Countries)
	})

	t.Run("headers are cleaned before matching", func(t *testing.T) {
		entities, err := parseCsvDocument(csvDocument(
			"Entity Name,Target Type,Address Country\n" +
				"Acme Trading,company,Germany\n"))
		require.NoError(t, err)
		require.Len(t, entities, 1)

		assert.Equal(t, []string{"Acme Trading"}, entities[0].Names)
		assert.Equal(t, models.EntityKindCompanyOrEntity, entities[0].EntityKind)
		assert.Equal(t, []string{"DE"}, entities[0].Countries)
	})

	t.Run("quoted field with comma", func(t *testing.T) {
		entities, err := parseCsvDocument(csvDocument(
			"name,type\n" +
				"\"SMITH, John\",person\n"))
		require.NoError(t, err)
		require.Len(t, entities, 1)

		assert.Equal(t, []string{"SMITH, John"}, entities[0].Names)
		assert.Equal(t, models.EntityKindIndividual, entities[0].EntityKind)
	})

	t.Run("name only header", func(t *testing.T) {
		entities, err := parseCsvDocument(csvDocument(
			"designation\nOmega Holdings\n"))
		require.NoError(t, err)
		require.Len(t, entities, 1)

		assert.Equal(t, []string{"Omega Holdings"}, entities[0].Names)
		assert.Equal(t, models.EntityKindUnknown, entities[0].EntityKind)
	})

	t.Run("garbage rows are dropped", func(t *testing.T) {
		entities, err := parseCsvDocument(csvDocument(
			"name\n" +
				"Eric Badege\n" +
				"http://example.com/list\n" +
				"X\n" +
				"\n"))
		require.NoError(t, err)
		require.Len(t, entities, 1)

		assert.Equal(t, []string{"Eric Badege"}, entities[0].Names)
	})

	t.Run("short rows are skipped", func(t *testing.T) {
		entities, err := parseCsvDocument(csvDocument(
			"country,name\n" +
				"France\n" +
				"Germany,Klaus Weber\n"))
		require.NoError(t, err)
		require.Len(t, entities, 1)

		assert.Equal(t, []string{"Klaus Weber"}, entities[0].Names)
	})

	t.Run("no name column", func(t *testing.T) {
		entities, err := parseCsvDocument(csvDocument(
			"id,remarks\n1,listed\n"))

		assert.ErrorIs(t, err, models.ErrDocumentUnreadable)
		assert.Nil(t, entities)
	})

	t.Run("empty document", func(t *testing.T) {
		entities, err := parseCsvDocument(csvDocument(""))

		require.NoError(t, err)
		assert.Empty(t, entities)
	})
}

func TestDecodeTabularText(t *testing.T) {
	t.Run("utf8 passthrough", func(t *testing.T) {
		decoded, err := decodeTabularText([]byte("name\nRené Dupont\n"))
		require.NoError(t, err)

		assert.Equal(t, "name\nRené Dupont\n", string(decoded))
	})

	t.Run("bom stripped", func(t *testing.T) {
		decoded, err := decodeTabularText([]byte("\xef\xbb\xbfname\nJohn Smith\n"))
		require.NoError(t, err)

		assert.Equal(t, "name\nJohn Smith\n", string(decoded))
	})

	t.Run("windows 1252 decoded", func(t *testing.T) {
		decoded, err := decodeTabularText([]byte("name\nRen\xe9 Dupont\n"))
		require.NoError(t, err)

		assert.Equal(t, "name\nRené Dupont\n", string(decoded))
	})
}

func TestParseCsvDocumentWindows1252(t *testing.T) {
	entities, err := parseCsvDocument(csvDocument("name\nRen\xe9 Dupont\nFran\xe7ois Mercier\n"))
	require.NoError(t, err)
	require.Len(t, entities, 2)

	assert.Equal(t, []string{"René Dupont"}, entities[0].Names)
	assert.Equal(t, []string{"François Mercier"}, entities[1].Names)
}
