package fonts

import (
	"github.com/arthur-debert/fontweak/pkg/errors"
	fontscan "github.com/arthur-debert/fontweak/pkg/fonts"
	"github.com/arthur-debert/fontweak/pkg/logging"
	"github.com/arthur-debert/fontweak/pkg/types"
)

// ListFontsOptions defines the options for the ListFonts command.
type ListFontsOptions struct {
	Scanner *fontscan.Scanner
}

// ListFonts scans the font directories and returns the installed families.
func ListFonts(opts ListFontsOptions) (*types.FontsResult, error) {
	log := logging.GetLogger("commands.fonts")
	log.Debug().Str("command", "ListFonts").Msg("Executing command")

	if opts.Scanner == nil {
		return nil, errors.New(errors.ErrInvalidInput, "no font scanner configured")
	}

	result := &types.FontsResult{
		Dirs:     append([]string(nil), opts.Scanner.Dirs...),
		Families: opts.Scanner.Families(),
	}
	log.Info().Str("command", "ListFonts").Int("families", len(result.Families)).Msg("Command finished")
	return result, nil
}
