package timesheet

import (
	"bytes"
	"fmt"
	"strings"
)

// buildTimesheetPDF renders the report as a single-page text PDF. The
// layout is deliberately plain; the document is an attachment to the
// wage administration, not a styled payslip.
func buildTimesheetPDF(report Report) ([]byte, error) {
	lines := timesheetLines(report)

	var content strings.Builder
	content.WriteString("BT\n/F1 10 Tf\n12 TL\n40 800 Td\n")
	for i, line := range lines {
		escaped := pdfEscape(line)
		if i == 0 {
			content.WriteString(fmt.Sprintf("(%s) Tj\n", escaped))
			continue
		}
		content.WriteString(fmt.Sprintf("T* (%s) Tj\n", escaped))
	}
	content.WriteString("ET")

	stream := content.String()
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n",
		"4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Courier >>\nendobj\n",
		fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects)+1)
	offsets = append(offsets, 0)

	for _, obj := range objects {
		offsets = append(offsets, out.Len())
		out.WriteString(obj)
	}

	xrefStart := out.Len()
	out.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)))
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		out.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}
	out.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xrefStart))

	return out.Bytes(), nil
}

func timesheetLines(report Report) []string {
	lines := []string{
		report.Header.CompanyName,
		fmt.Sprintf("Urenstaat %d periode %d (%s)", report.Header.Year, report.Header.PeriodNumber, report.Header.WeekRange),
		fmt.Sprintf("Chauffeur %s  %s", report.Header.DriverNumber, report.Header.DriverName),
		fmt.Sprintf("In dienst %s, %.0f%%, uurloon %s", report.Employee.EmploymentStart, report.Employee.PercentWork, report.Employee.HourlyRate.StringFixed(2)),
		"",
	}

	for _, week := range report.Weeks {
		lines = append(lines, fmt.Sprintf("Week %d", week.WeekNumber))
		for _, d := range week.Days {
			if d.TotalHours == 0 && d.VacationHours == 0 && d.SickHours == 0 && d.TvTHours == 0 && d.Code == "" {
				continue
			}
			lines = append(lines, fmt.Sprintf("  %s %s  %-15s %6.2f uur  onbelast %8s  km %8s",
				d.Weekday, d.Date, d.Code, d.TotalHours,
				d.UntaxedAllowance.StringFixed(2), d.KilometersAllowance.StringFixed(2)))
		}
		lines = append(lines, fmt.Sprintf("  totaal %6.2f uur  100%%: %.2f  130%%: %.2f  150%%: %.2f  200%%: %.2f",
			week.Total.TotalHours, week.Total.Regular100, week.Total.Overtime130,
			week.Total.Overtime150, week.Total.Premium200))
		lines = append(lines, "")
	}

	g := report.GrandTotal
	lines = append(lines,
		fmt.Sprintf("Totaal %6.2f uur  100%%: %.2f  130%%: %.2f  150%%: %.2f  200%%: %.2f",
			g.TotalHours, g.Regular100, g.Overtime130, g.Overtime150, g.Premium200),
		fmt.Sprintf("Onbelast %s  Belast %s  Nacht %s (%.2f uur)  Kilometers %s",
			g.UntaxedAllowance.StringFixed(2), g.TaxedAllowance.StringFixed(2),
			g.NightAllowance.StringFixed(2), g.NightHours, g.KilometersAllowance.StringFixed(2)),
		fmt.Sprintf("Vakantie: recht %.1f uur, saldo %.2f uur (%.2f dagen)",
			report.Vacation.EntitlementHours, report.Vacation.HoursRemaining, report.Vacation.TotalVacationDays),
		fmt.Sprintf("Tijd voor tijd: gespaard %.2f, opgenomen %.2f, saldo %.2f",
			report.TimeForTime.HoursSaved, report.TimeForTime.HoursUsed, report.TimeForTime.MonthEndBalance),
	)
	return lines
}

func pdfEscape(v string) string {
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return replacer.Replace(v)
}
