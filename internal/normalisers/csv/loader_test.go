package csv

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/james-keevy/acqf-eqf-comparator/internal/aggregate"
	"github.com/james-keevy/acqf-eqf-comparator/internal/core/domain"
	"github.com/james-keevy/acqf-eqf-comparator/internal/core/ports/driven"
)

func TestLoad_Basic(t *testing.T) {
	content := "Level,Domain,Descriptor\n3,Knowledge,Understands X\n3,Knowledge,Applies Y\n"

	result, err := Load([]byte(content))
	require.NoError(t, err)

	assert.Equal(t, []domain.RawRecord{
		{Level: "3", Domain: "Knowledge", Descriptor: "Understands X"},
		{Level: "3", Domain: "Knowledge", Descriptor: "Applies Y"},
	}, result.Records)
	assert.Equal(t, 2, result.Rows)
	assert.Empty(t, result.Warnings)

	table := aggregate.Aggregate("levels.csv", result.Records)
	d, ok := table.Descriptor("Level 3", "Knowledge")
	require.True(t, ok)
	assert.Equal(t, "Understands X\nApplies Y", d)
}

func TestLoad_ByteOrderMark(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "utf-8 bom", content: "\xef\xbb\xbfLevel,Domain,Descriptor\n1,Skills,Counts\n"},
		{name: "double bom", content: "\xef\xbb\xbf\xef\xbb\xbfLevel,Domain,Descriptor\n1,Skills,Counts\n"},
		{name: "mojibake bom", content: "ï»¿Level,Domain,Descriptor\n1,Skills,Counts\n"},
		{name: "padded header", content: " Level , Domain ,Descriptor\n1,Skills,Counts\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Load([]byte(tt.content))
			require.NoError(t, err)
			require.Len(t, result.Records, 1)
			assert.Equal(t, "Counts", result.Records[0].Descriptor)
		})
	}
}

func TestLoad_MissingDescriptorColumn(t *testing.T) {
	_, err := Load([]byte("Level,Domain,Text\n1,Skills,x\n"))
	require.Error(t, err)

	assert.True(t, errors.Is(err, domain.ErrSchema))
	var schemaErr *domain.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{"Descriptor"}, schemaErr.Missing)
}

func TestLoad_ColumnsAreCaseExact(t *testing.T) {
	_, err := Load([]byte("level,domain,Descriptor\n1,Skills,x\n"))

	var schemaErr *domain.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{"Level", "Domain"}, schemaErr.Missing)
}

func TestLoad_EmptyFile(t *testing.T) {
	_, err := Load(nil)

	var schemaErr *domain.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, Columns, schemaErr.Missing)
}

func TestLoad_SkipsMalformedRows(t *testing.T) {
	content := strings.Join([]string{
		"Level,Domain,Descriptor",
		"1,Skills,Counts",
		"1,Skills,extra,delimiter",
		"2,Knowledge",
		"2,Knowledge,Recalls facts",
	}, "\n")

	result, err := Load([]byte(content))
	require.NoError(t, err)

	require.Len(t, result.Records, 2)
	assert.Equal(t, 4, result.Rows)
	require.Len(t, result.Warnings, 2)
	assert.Equal(t, domain.WarningMalformedRow, result.Warnings[0].Kind)
	assert.Equal(t, 3, result.Warnings[0].Row)
	assert.Equal(t, 4, result.Warnings[1].Row)
}

func TestLoad_OmitsIncompleteRows(t *testing.T) {
	content := "Descriptor,Level,Domain,Notes\n ,1,Skills,\nCounts,,Skills,\nReads,2, Knowledge ,n/a\n"

	result, err := Load([]byte(content))
	require.NoError(t, err)

	assert.Equal(t, []domain.RawRecord{{Level: "2", Domain: "Knowledge", Descriptor: "Reads"}}, result.Records)
	assert.Empty(t, result.Warnings)
}

func TestLoad_QuotedMultiline(t *testing.T) {
	content := "Level,Domain,Descriptor\n4,Skills,\"Plans work,\nthen reviews it\"\n"

	result, err := Load([]byte(content))
	require.NoError(t, err)

	require.Len(t, result.Records, 1)
	assert.Equal(t, "Plans work,\nthen reviews it", result.Records[0].Descriptor)
}

func TestEncode_Header(t *testing.T) {
	data, err := Encode(domain.NewDescriptorTable("id", "x", nil))
	require.NoError(t, err)
	assert.Equal(t, "Level,Domain,Descriptor\n", string(data))
}

func TestEncode_RoundTrip(t *testing.T) {
	original := aggregate.Aggregate("doc.pdf", []domain.RawRecord{
		{Level: "Level Ten", Domain: "autonomy", Descriptor: "Leads, \"independently\""},
		{Level: "2", Domain: "Knowledge", Descriptor: "Recalls facts"},
		{Level: "2", Domain: "Knowledge", Descriptor: "Explains concepts"},
		{Level: "Foundation", Domain: "Skills", Descriptor: "Follows steps"},
		{Level: "2", Domain: "scope of knowledge", Descriptor: "Broad"},
	})

	data, err := Encode(original)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Level,Domain,Descriptor\nLevel 2,Knowledge,"))

	loaded, err := Load(data)
	require.NoError(t, err)
	reloaded := aggregate.Aggregate("export.csv", loaded.Records)

	assert.True(t, original.Equal(reloaded))
	assert.Equal(t, original.Entries(), reloaded.Entries())
}

func TestNormaliser(t *testing.T) {
	var _ driven.Normaliser = (*Normaliser)(nil)

	n := New()
	assert.Equal(t, "csv", n.Name())
	assert.Equal(t, 50, n.Priority())
	assert.Equal(t, []domain.Format{domain.FormatCSV}, n.SupportedFormats())

	_, err := n.Normalise(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	result, err := n.Normalise(context.Background(), &domain.Artefact{
		Name:    "levels.csv",
		Format:  domain.FormatCSV,
		Content: []byte("Level,Domain,Descriptor\n1,Skills,Counts\n1,Skills\n"),
	})
	require.NoError(t, err)
	assert.Len(t, result.Records, 1)
	assert.Len(t, result.Warnings, 1)
	assert.Empty(t, result.Strategy)
}

func TestEncode_RoundTripCarriageReturns(t *testing.T) {
	original := aggregate.Aggregate("levels.csv", []domain.RawRecord{
		{Level: "Level 1", Domain: "Knowledge", Descriptor: "a\r\nb"},
	})

	data, err := Encode(original)
	require.NoError(t, err)
	loaded, err := Load(data)
	require.NoError(t, err)

	reloaded := aggregate.Aggregate("levels.csv", loaded.Records)
	assert.True(t, original.Equal(reloaded))
}
