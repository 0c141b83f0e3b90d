package bom

import (
	"strings"
	"testing"

	apperrors "team-inventory/core/errors"
	"team-inventory/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	input := "Part Number,Part Name,QTY\n" +
		"217-2700,VEX 84 Tooth Gear,2\n" +
		"276-1496,\"VEX Steel Shaft 12\"\" Long\",3abc\n" +
		"228-2500,VEX Omni Wheel 4\",4\n" +
		",No part number,1\n" +
		"276-2169,Collar,0\n" +
		"276-4840,C-Channel,-2\n" +
		"276-2177,Motor,2.5\n" +
		"276-4851,Brain,abc\n" +
		"\n" +
		"276-6050\n"

	lines, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []reconcile.Line{
		{PartNumber: "217-2700", Quantity: 2, Name: "VEX 84 Tooth Gear"},
		{PartNumber: "276-1496", Quantity: 3, Name: `VEX Steel Shaft 12" Long`},
		{PartNumber: "228-2500", Quantity: 4, Name: `VEX Omni Wheel 4"`},
		{PartNumber: "276-2177", Quantity: 2, Name: "Motor"},
	}, lines)
}

func TestParseCSV_HeaderAliases(t *testing.T) {
	for _, header := range []string{
		"part_number,quantity,name",
		"PART NUMBER, Qty, part_name",
		" part_number ,QUANTITY",
	} {
		t.Run(header, func(t *testing.T) {
			lines, err := ParseCSV(strings.NewReader(header + "\nP1,1,Gear\n"))
			require.NoError(t, err)
			require.Len(t, lines, 1)
			assert.Equal(t, "P1", lines[0].PartNumber)
			assert.Equal(t, 1, lines[0].Quantity)
		})
	}
}

func TestParseCSV_ByteOrderMark(t *testing.T) {
	input := "\uFEFFPart Number,Qty,Name\n217-2700,2,Gear\n"
	lines, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "217-2700", lines[0].PartNumber)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "Gear", lines[0].Name)
}

func TestParseCSV_Errors(t *testing.T) {
	_, err := ParseCSV(strings.NewReader(""))
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))

	_, err = ParseCSV(strings.NewReader("sku,count\nP1,1\n"))
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
	assert.Contains(t, err.Error(), "part_number and quantity")
}

func TestCleanLines(t *testing.T) {
	lines := CleanLines([]reconcile.Line{
		{PartNumber: " P1 ", Quantity: 1, Name: " Gear "},
		{PartNumber: "P2", Quantity: 0},
		{PartNumber: "", Quantity: 4},
	})
	assert.Equal(t, []reconcile.Line{{PartNumber: "P1", Quantity: 1, Name: "Gear"}}, lines)
}
