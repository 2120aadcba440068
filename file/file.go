package file

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jsphweid/barscribe/model"
)

func CreateTuneNumMap(paths []string) model.TuneNumToPath {
	res := make(model.TuneNumToPath)
	for i, v := range paths {
		res[uint32(i)] = v
	}
	return res
}

// MidiName is the output filename for the tune at path, prefixed with its
// number so tunes with the same basename do not collide.
func MidiName(num uint32, path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return fmt.Sprintf("%03d-%v.mid", num, base)
}
