package profile

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/lumenworks/visgen/errors"
)

// Save writes the profile as TOML. Viper reads the file back on Load;
// pelletier gives stable field ordering for the written side.
func Save(p *Profile, path string) error {
	data, err := toml.Marshal(p)
	if err != nil {
		return errors.Wrap(err, "marshaling build profile")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing build profile %s", path)
	}
	return nil
}
