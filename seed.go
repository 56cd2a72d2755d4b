package sketch

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Seed holds the figure-level seed. Drawing calls derive their stream seeds
// from it with small fixed offsets, so sibling strokes never share noise
// but one seed reproduces the whole figure. Nothing global is seeded.
type Seed struct {
	intSeed int64
}

// Jan 1, 2020 (to make filenames a little smaller)
const epoch2020 = 1577836800

// Init initializes the seed.
// hexSeed is either the empty string, which picks a time-derived seed, or
// the hex value recovered from a previous run's filename.
func Init(hexSeed string) (Seed, error) {
	s := Seed{intSeed: time.Now().UnixNano() - epoch2020}
	if hexSeed != "" {
		err := s.SetSeed(hexSeed)
		return s, err
	}
	return s, nil
}

// GetSeed returns the figure seed.
func (s Seed) GetSeed() int64 {
	return s.intSeed
}

// SetSeed sets the seed given the hex seed part of a filename.
func (s *Seed) SetSeed(hexSeed string) (err error) {
	s.intSeed, err = strconv.ParseInt(hexSeed, 16, 64)
	return err
}

// GetFilename returns a string to use for this figure's output file.
func (s Seed) GetFilename(prefix, ext string) string {
	return fmt.Sprintf("%s%s-%x%s", prefix, getGitHash(), s.intSeed, ext)
}

func getGitHash() string {
	out, err := exec.Command("git", "rev-parse", "--verify", "HEAD").Output()
	if err != nil {
		return ""
	}
	hash := strings.TrimSpace(string(out))
	if len(hash) < 7 {
		return ""
	}
	return hash[:7]
}
