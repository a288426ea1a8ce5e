package watchlists

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vigiehq/vigie-backend/models"
)

func TestDetectListType(t *testing.T) {
	tts := []struct {
		name     string
		document string
		expected models.ListType
	}{
		{
			name: "EU by namespace",
			document: `<?xml version="1.0"?>
				<export xmlns="http://eu.europa.ec/fpi/fsd/export">
					<sanctionEntity>
						<nameAlias wholeName="Test Entity"/>
					</sanctionEntity>
				</export>`,
			expected: models.ListTypeEU,
		},
		{
			name: "EU by sanctionEntity elements",
			document: `<?xml version="1.0"?>
				<export>
					<sanctionEntity>
						<nameAlias wholeName="Test Entity"/>
					</sanctionEntity>
				</export>`,
			expected: models.ListTypeEU,
		},
		{
			name: "OFAC by namespace",
			document: `<?xml version="1.0"?>
				<sanctionsData xmlns="https://sanctionslistservice.ofac.treas.gov/api/PublicationPreview/exports/ENHANCED_XML">
					<entities>
						<entity>
							<names><name><translations><translation><formattedFullName>Test</formattedFullName></translation></translations></name></names>
						</entity>
					</entities>
				</sanctionsData>`,
			expected: models.ListTypeOFAC,
		},
		{
			name: "OFAC by sanctionsData root",
			document: `<?xml version="1.0"?>
				<sanctionsData>
					<entities>
						<entity><names><name>Test</name></names></entity>
					</entities>
				</sanctionsData>`,
			expected: models.ListTypeOFAC,
		},
		{
			name: "OFAC by entities structure",
			document: `<?xml version="1.0"?>
				<root>
					<entities>
						<entity><names><name>Test</name></names></entity>
					</entities>
				</root>`,
			expected: models.ListTypeOFAC,
		},
		{
			name: "UN by Name6 with IndividualEntityShip",
			document: `<?xml version="1.0"?>
				<Designations>
					<Designation>
						<Names>
							<Name>
								<Name6>Test Individual</Name6>
							</Name>
						</Names>
						<IndividualEntityShip>Individual</IndividualEntityShip>
					</Designation>
				</Designations>`,
			expected: models.ListTypeUN,
		},
		{
			name: "UK by plain Name elements",
			document: `<?xml version="1.0"?>
				<Designations>
					<Designation>
						<Name>Test Individual</Name>
					</Designation>
				</Designations>`,
			expected: models.ListTypeUK,
		},
		{
			name: "UK as default for Designations",
			document: `<?xml version="1.0"?>
				<Designations>
					<Designation>
						<SomeOtherElement>Data</SomeOtherElement>
					</Designation>
				</Designations>`,
			expected: models.ListTypeUK,
		},
		{
			name: "generic for unknown structure",
			document: `<?xml version="1.0"?>
				<unknown>
					<item>
						<name>Test</name>
					</item>
				</unknown>`,
			expected: models.ListTypeGeneric,
		},
		{
			name: "EU namespace wins over UN markers",
			document: `<?xml version="1.0"?>
				<Designations xmlns="http://eu.europa.ec/fpi/fsd/export">
					<Designation>
						<Name6>Test</Name6>
						<IndividualEntityShip>Individual</IndividualEntityShip>
					</Designation>
				</Designations>`,
			expected: models.ListTypeEU,
		},
		{
			name: "OFAC namespace wins over structure",
			document: `<?xml version="1.0"?>
				<sanctionsData xmlns="https://sanctionslistservice.ofac.treas.gov/api/PublicationPreview/exports/ENHANCED_XML">
				</sanctionsData>`,
			expected: models.ListTypeOFAC,
		},
		{
			name: "prefixed namespace elements",
			document: `<?xml version="1.0"?>
				<ns:export xmlns:ns="http://eu.europa.ec/fpi/fsd/export">
					<ns:sanctionEntity>
						<ns:nameAlias wholeName="Test"/>
					</ns:sanctionEntity>
				</ns:export>`,
			expected: models.ListTypeEU,
		},
	}

	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			root, err := decodeXmlTree([]byte(tt.document))
			require.NoError(t, err)

			assert.Equal(t, tt.expected, detectListType(root))
		})
	}
}

func TestDecodeXmlTree(t *testing.T) {
	t.Run("builds the element tree", func(t *testing.T) {
		root, err := decodeXmlTree([]byte(
			`<list version="2"><entry><name>Eric Badege</name></entry></list>`))
		require.NoError(t, err)

		assert.Equal(t, "list", root.local)
		assert.Equal(t, "2", root.attr("version"))
		assert.Equal(t, "Eric Badege", root.firstText("name"))
	})

	t.Run("recovers from an unescaped ampersand", func(t *testing.T) {
		root, err := decodeXmlTree([]byte(
			`<list><name>Smith & Jones Trading</name></list>`))
		require.NoError(t, err)

		assert.Equal(t, "Smith & Jones Trading", root.firstText("name"))
	})

	t.Run("recovers from a missing end tag", func(t *testing.T) {
		root, err := decodeXmlTree([]byte(
			`<list><entry><name>Acme Corporation</name></list>`))
		require.NoError(t, err)

		assert.Equal(t, "Acme Corporation", root.firstText("name"))
	})

	t.Run("rejects a document without elements", func(t *testing.T) {
		_, err := decodeXmlTree([]byte("plain text, no markup"))

		assert.ErrorIs(t, err, models.ErrDocumentUnreadable)
	})
}
