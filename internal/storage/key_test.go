package storage

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain name untouched", "report.pdf", "report.pdf"},
		{"spaces and parentheses", "Informe Final (v2).pdf", "Informe_Final__v2_.pdf"},
		{"accented characters", "Año 2024 resumen.pdf", "A_o_2024_resumen.pdf"},
		{"path-like segments", "../../etc/passwd", ".._.._etc_passwd"},
		{"allowed punctuation kept", "final-report_v3.tar.gz", "final-report_v3.tar.gz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestReportKey(t *testing.T) {
	key := ReportKey("org1", "proj1", "Informe Final (v2).pdf")
	require.Equal(t, "org1/proj1/Informe_Final__v2_.pdf", key)
}

func TestReportKey_OnlySafeCharacters(t *testing.T) {
	safe := regexp.MustCompile(`^[A-Za-z0-9.\-_/]+$`)

	inputs := []string{
		"Informe Final (v2).pdf",
		"façade & éxito.xlsx",
		"weird\tname\nhere.pdf",
		"über//nested\\path.pdf",
	}

	for _, input := range inputs {
		key := ReportKey("11111111-1111-1111-1111-111111111111", "22222222-2222-2222-2222-222222222222", input)
		require.True(t, safe.MatchString(key), "key %q contains unsafe characters", key)
	}
}
