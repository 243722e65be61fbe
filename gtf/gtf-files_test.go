// refprep: reference genome preparation for single-cell pipelines.
// Copyright (c) 2026 the refprep authors.

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version, and Additional Terms
// (see below).

// This program is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public
// License and Additional Terms along with this program. If not, see
// <https://github.com/ExaScience/elprep/blob/master/LICENSE.txt>.

package gtf

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/screcounter/refprep/internal"
)

const testGtf = "#!genome-build GRCz11\n" +
	"#!genome-version GRCz11\n" +
	"chr1\tensembl\tgene\t1\t100\t.\t+\t.\tgene_id \"G1\"; gene_version \"1\"; gene_biotype \"protein_coding\";\n" +
	"chr2\tensembl\tgene\t5\t50\t.\t-\t.\tgene_id \"G2\"; gene_biotype \"TEC\";\n" +
	"chr3\tensembl\ttranscript\t1\t100\t.\t+\t.\tgene_id \"G3.4\"; gene_biotype \"lncRNA\"; tag \"readthrough_transcript\";\n" +
	"\n" +
	"chr1\tensembl\ttranscript\t1\t100\t.\t-\t.\tgene_id \"ENSG123.4\"; transcript_biotype \"protein_coding\"\n" +
	"chr4\thavana\texon\t7\t9\t.\t+\t0\tgene_id \"G4\"; exon_number 2; description \"free  text\"\r\n"

const wantGtf = "#!genome-build GRCz11\n" +
	"#!genome-version GRCz11\n" +
	"chr1\tensembl\tgene\t1\t100\t.\t+\t.\tgene_id \"G1\"; gene_version \"1\"; gene_biotype \"protein_coding\"\n" +
	"chr1\tensembl\ttranscript\t1\t100\t.\t-\t.\tgene_id \"ENSG123\"; transcript_biotype \"protein_coding\"; gene_version \"4\"\n" +
	"chr4\thavana\texon\t7\t9\t.\t+\t0\tgene_id \"G4\"; exon_number \"2\"; description \"free  text\"\n"

func rewriteString(t *testing.T, input string, filter *Filter) (string, *Result) {
	var output bytes.Buffer
	result, err := Rewrite(strings.NewReader(input), &output, filter, false)
	require.NoError(t, err)
	return output.String(), result
}

func TestRewrite(t *testing.T) {
	output, result := rewriteString(t, testGtf, newFishFilter(t, DefaultExcludeTags...))
	assert.Equal(t, wantGtf, output)

	assert.Equal(t, []string{"chr1", "chr4"}, result.SeqNames.Sorted())
	assert.Equal(t, 5, result.Stats.Total)
	assert.Equal(t, 3, result.Stats.Kept)
	assert.Equal(t, 1, result.Stats.Biotype)
	assert.Equal(t, 1, result.Stats.Tag)
	assert.Equal(t, map[string]int{"protein_coding": 2, "lncRNA": 1}, result.Stats.KeptBiotypes)
	assert.Equal(t, map[string]int{"TEC": 1}, result.Stats.FilteredBiotypes)
}

func TestRewriteComments(t *testing.T) {
	input := "#!a\r\n# b \t c\n#"
	output, result := rewriteString(t, input, newFishFilter(t))
	assert.Equal(t, input, output)
	assert.Equal(t, 0, result.Stats.Total)
	assert.Empty(t, result.SeqNames)
}

func TestRewriteDroppedRecordsKeepNoSeqNames(t *testing.T) {
	input := "chrA\ts\tgene\t1\t2\t.\t+\t.\tgene_biotype \"TEC\"\n" +
		"chrB\ts\tgene\t1\t2\t.\t+\t.\tgene_biotype \"TEC\"\n" +
		"chrB\ts\tgene\t3\t4\t.\t+\t.\tgene_biotype \"lncRNA\"\n" +
		"chrC\ts\tgene\t1\t2\t.\t+\t.\tgene_biotype \"lncRNA\"; tag \"PAR\"\n"
	_, result := rewriteString(t, input, newFishFilter(t, DefaultExcludeTags...))
	assert.Equal(t, []string{"chrB"}, result.SeqNames.Sorted())
}

func TestRewriteIsIdempotent(t *testing.T) {
	once, _ := rewriteString(t, testGtf, newFishFilter(t, DefaultExcludeTags...))
	twice, result := rewriteString(t, once, newFishFilter(t))
	assert.Equal(t, once, twice)
	assert.Equal(t, 3, result.Stats.Kept)
}

func TestRewriteRoundTrip(t *testing.T) {
	output, _ := rewriteString(t, testGtf, newFishFilter(t, DefaultExcludeTags...))
	for _, line := range strings.Split(strings.TrimSuffix(output, "\n"), "\n") {
		if IsComment(line) {
			continue
		}
		record, err := ParseRecord(line)
		require.NoError(t, err)
		column := line[strings.LastIndexByte(line, '\t')+1:]
		assert.Equal(t, column, record.Attributes.String())
	}
}

func TestRewriteMalformedRecord(t *testing.T) {
	input := "#header\nchr1\tensembl\tgene\t1\t100\n"
	_, err := Rewrite(strings.NewReader(input), new(bytes.Buffer), newFishFilter(t), false)
	assert.True(t, errors.Is(err, ErrMalformedRecord))
	assert.Contains(t, err.Error(), "line 2")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRewriteWriteError(t *testing.T) {
	_, err := Rewrite(strings.NewReader(testGtf), failingWriter{}, newFishFilter(t), false)
	assert.True(t, errors.Is(err, internal.ErrWrite))
}

func TestParseRecord(t *testing.T) {
	record, err := ParseRecord("chr1\tsrc\tgene\t1\t2\t.\t+\t.\tgene_id \"G1\"\textra")
	require.NoError(t, err)
	assert.Equal(t, "chr1", record.SeqName())
	assert.Equal(t, "gene", record.Fields[FieldFeature])
	assert.Equal(t, AttributeMap{{"gene_id", "G1"}}, record.Attributes)
	assert.Equal(t, "chr1\tsrc\tgene\t1\t2\t.\t+\t.\tgene_id \"G1\"", string(record.Append(nil)))

	record, err = ParseRecord("chr1\tsrc\tgene\t1\t2\t.\t+\t.\t")
	require.NoError(t, err)
	assert.Empty(t, record.Attributes)

	_, err = ParseRecord("chr1\tsrc\tgene")
	assert.True(t, errors.Is(err, ErrMalformedRecord))
}

func TestRewriteFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.gtf.gz")
	f, err := os.Create(input)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(testGtf))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	output := filepath.Join(dir, "out.gtf")
	result, err := RewriteFile(input, output, newFishFilter(t, DefaultExcludeTags...), true)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Stats.Kept)
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, wantGtf, string(data))

	_, err = RewriteFile(filepath.Join(dir, "missing.gtf"), output, newFishFilter(t), false)
	assert.True(t, errors.Is(err, internal.ErrInputNotFound))

	_, err = RewriteFile(input, filepath.Join(dir, "no", "such", "dir", "out.gtf"), newFishFilter(t), false)
	assert.True(t, errors.Is(err, internal.ErrWrite))
}
