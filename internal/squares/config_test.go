package squares

import (
	"bytes"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    Config
		wantErr bool
	}{
		{name: "defaults", args: nil, want: Config{Workers: 4, OutputFile: "results.csv"}},
		{name: "cpus", args: []string{"--cpus", "8"}, want: Config{Workers: 8, OutputFile: "results.csv"}},
		{name: "cpus with equals", args: []string{"--cpus=2"}, want: Config{Workers: 2, OutputFile: "results.csv"}},
		{name: "output file", args: []string{"--output-file", "out/sq.csv"}, want: Config{Workers: 4, OutputFile: "out/sq.csv"}},
		{name: "both", args: []string{"--output-file=a.csv", "--cpus=1"}, want: Config{Workers: 1, OutputFile: "a.csv"}},
		{name: "unknown flag", args: []string{"--verbose"}, wantErr: true},
		{name: "non-integer cpus", args: []string{"--cpus", "many"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := ParseFlags(tt.args, &out)
			if tt.wantErr {
				require.Error(t, err)
				require.NotEmpty(t, out.String(), "parse errors are reported with usage")
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlags_Help(t *testing.T) {
	var out bytes.Buffer
	_, err := ParseFlags([]string{"--help"}, &out)
	require.ErrorIs(t, err, pflag.ErrHelp)
	require.Contains(t, out.String(), "--cpus")
	require.Contains(t, out.String(), "--output-file")
}
