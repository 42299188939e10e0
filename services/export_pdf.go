package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GeneratePDF creates a quote document from ExportData using maroto/v2.
// It returns the raw PDF bytes or an error.
func GeneratePDF(data ExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(10).
		WithRightMargin(15).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addHeader(m, data)
	addTableHeader(m)
	for _, r := range data.Rows {
		addTableRow(m, r)
	}
	addSummary(m, data)
	addFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addHeader adds the quote label, type and date to the PDF.
func addHeader(m core.Maroto, data ExportData) {
	// Title row
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(data.Label, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	// Quote type and date row
	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Quote Type: %s", data.QuoteType), props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", data.CreatedDate), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	// Spacer
	m.AddRows(row.New(4))
}

// addTableHeader adds the column header row for the breakdown table.
func addTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextRight := headerText
	headerTextRight.Align = align.Right

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(9).Add(
				text.New("Item", headerText),
			).WithStyle(&headerCell),
			col.New(3).Add(
				text.New("Amount", headerTextRight),
			).WithStyle(&headerCell),
		),
	)
}

// addTableRow adds a single breakdown row, styled by row kind.
func addTableRow(m core.Maroto, r ExportRow) {
	var cellStyle *props.Cell
	var textSize float64 = 8
	var textStyle fontstyle.Type = fontstyle.Normal
	labelPrefix := ""

	switch r.Kind {
	case RowTierHeader:
		textStyle = fontstyle.Bold
		textSize = 9
		bg := &props.Color{Red: 235, Green: 235, Blue: 235}
		cellStyle = &props.Cell{BackgroundColor: bg}
	default:
		labelPrefix = "  "
	}

	leftText := props.Text{
		Size:  textSize,
		Style: textStyle,
		Align: align.Left,
	}
	rightText := leftText
	rightText.Align = align.Right

	amount := FormatUSD(r.Amount)
	if r.Kind == RowIncluded {
		amount = "Included"
	}

	colLabel := col.New(9).Add(text.New(labelPrefix+r.Label, leftText))
	colAmount := col.New(3).Add(text.New(amount, rightText))

	if cellStyle != nil {
		colLabel = colLabel.WithStyle(cellStyle)
		colAmount = colAmount.WithStyle(cellStyle)
	}

	m.AddRows(row.New(7).Add(colLabel, colAmount))
}

// addSummary adds the totals section at the bottom of the PDF.
func addSummary(m core.Maroto, data ExportData) {
	// Spacer before summary
	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}

	addSummaryRow := func(label, value string) {
		m.AddRows(
			row.New(8).Add(
				col.New(9).Add(
					text.New(label, labelStyle),
				).WithStyle(summaryCell),
				col.New(3).Add(
					text.New(value, valueStyle),
				).WithStyle(summaryCell),
			),
		)
	}

	addSummaryRow("Subtotal", FormatUSD(data.Subtotal))
	if data.OverheadWaived {
		addSummaryRow("Production Overhead", "Waived")
	} else {
		addSummaryRow("Production Overhead", FormatUSD(data.Overhead))
	}
	if data.DeferredFee > 0 {
		addSummaryRow("Deferred Payment Fee", FormatUSD(data.DeferredFee))
	}
	if data.DiscountLabel != "" {
		addSummaryRow(data.DiscountLabel, "-"+FormatUSD(data.DiscountAmount))
	}
	addSummaryRow("Total", FormatUSD(data.Total))
	addSummaryRow(fmt.Sprintf("Deposit Due (%d%%)", data.DepositPercent), FormatUSD(data.Deposit))

	// Amount in words
	m.AddRows(row.New(4))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					"Total: "+AmountToWords(data.Total),
					props.Text{
						Size:  8,
						Style: fontstyle.Italic,
						Align: align.Left,
					},
				),
			),
		),
	)
}

// addFooter adds the generated-date line at the bottom.
func addFooter(m core.Maroto, data ExportData) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Generated on %s", data.CreatedDate),
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					},
				),
			),
		),
	)
}
