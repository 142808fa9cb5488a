package tuning

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Paths locates default/league/team table files under a base directory.
type Paths struct {
	BaseDir string
}

func (p Paths) DefaultPath() string {
	return filepath.Join(p.BaseDir, "tables", "default.yaml")
}
func (p Paths) LeaguePath(league string) string {
	return filepath.Join(p.BaseDir, "tables", league+".yaml")
}
func (p Paths) TeamPath(league, team string) string {
	return filepath.Join(p.BaseDir, "tables", league, "teams", team+".yaml")
}

// Loader reads YAML table files and merges default -> league -> team.
type Loader struct {
	paths Paths

	mu    sync.RWMutex
	cache map[string]RawConfig // key: "league" or "league/team" or "$default"
}

// NewLoader creates a table loader with the given base directory.
func NewLoader(baseDir string) *Loader {
	return &Loader{
		paths: Paths{BaseDir: baseDir},
		cache: make(map[string]RawConfig),
	}
}

// LoadMerged loads and merges default -> league -> team (team optional).
// League and team files may be absent; the default file must exist.
func (l *Loader) LoadMerged(league, team string) (RawConfig, error) {
	key := league
	if team != "" {
		key = league + "/" + team
	}
	l.mu.RLock()
	if cfg, ok := l.cache[key]; ok {
		l.mu.RUnlock()
		return cfg, nil
	}
	l.mu.RUnlock()

	defCfg, err := readRequired(l.paths.DefaultPath())
	if err != nil {
		return RawConfig{}, fmt.Errorf("read default tables: %w", err)
	}
	leagueCfg, _ := readYAML(l.paths.LeaguePath(league))
	var teamCfg RawConfig
	if team != "" {
		teamCfg, _ = readYAML(l.paths.TeamPath(league, team))
	}

	merged := mergeRaw(mergeRaw(defCfg, leagueCfg), teamCfg)

	l.mu.Lock()
	l.cache["$default"] = defCfg
	l.cache[league] = mergeRaw(defCfg, leagueCfg)
	l.cache[key] = merged
	l.mu.Unlock()

	return merged, nil
}

// Invalidate clears the cache. Call after hot reload detects changes.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]RawConfig)
}

// readRequired loads one file that must exist.
func readRequired(path string) (RawConfig, error) {
	var cfg RawConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return RawConfig{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RawConfig{}, err
	}
	return cfg, nil
}

// readYAML loads one file. Missing files return a zero config, no error.
func readYAML(path string) (RawConfig, error) {
	var cfg RawConfig
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawConfig{}, nil
		}
		return RawConfig{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RawConfig{}, err
	}
	return cfg, nil
}

// mergeRaw deep-merges b over a: b wins wherever it names a value, and
// subtype maps merge per key rather than replacing wholesale.
func mergeRaw(a, b RawConfig) RawConfig {
	out := a

	if b.Version != "" {
		out.Version = b.Version
	}
	if b.Notes != "" {
		out.Notes = b.Notes
	}

	if len(b.Run) > 0 {
		if out.Run == nil {
			out.Run = make(map[string]*RunCfg, len(b.Run))
		} else {
			out.Run = copyMap(out.Run)
		}
		for k, v := range b.Run {
			out.Run[k] = mergeRun(out.Run[k], v)
		}
	}
	if len(b.Pass) > 0 {
		if out.Pass == nil {
			out.Pass = make(map[string]*PassCfg, len(b.Pass))
		} else {
			out.Pass = copyMap(out.Pass)
		}
		for k, v := range b.Pass {
			out.Pass[k] = mergePass(out.Pass[k], v)
		}
	}

	if b.GoalLine != nil {
		c := *b.GoalLine
		out.GoalLine = &c
	}
	if b.FieldGoal != nil {
		out.FieldGoal = mergeFieldGoal(out.FieldGoal, b.FieldGoal)
	}
	if b.Punt != nil {
		out.Punt = mergePunt(out.Punt, b.Punt)
	}
	if b.ExtraPointProb != nil {
		v := *b.ExtraPointProb
		out.ExtraPointProb = &v
	}

	return out
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func mergeRun(a, b *RunCfg) *RunCfg {
	if a == nil {
		c := *b
		return &c
	}
	out := *a
	if b.Table != nil {
		out.Table = b.Table
	}
	if b.TimeMin != nil {
		out.TimeMin = b.TimeMin
	}
	if b.TimeMax != nil {
		out.TimeMax = b.TimeMax
	}
	if b.FumbleProb != nil {
		out.FumbleProb = b.FumbleProb
	}
	if b.StopClockProb != nil {
		out.StopClockProb = b.StopClockProb
	}
	return &out
}

func mergePass(a, b *PassCfg) *PassCfg {
	if a == nil {
		c := *b
		return &c
	}
	out := *a
	if b.Table != nil {
		out.Table = b.Table
	}
	if b.TimeMin != nil {
		out.TimeMin = b.TimeMin
	}
	if b.TimeMax != nil {
		out.TimeMax = b.TimeMax
	}
	if b.IntProb != nil {
		out.IntProb = b.IntProb
	}
	if b.CompletionStopProb != nil {
		out.CompletionStopProb = b.CompletionStopProb
	}
	return &out
}

func mergeFieldGoal(a, b *FieldGoalCfg) *FieldGoalCfg {
	if a == nil {
		c := *b
		return &c
	}
	out := *a
	if len(b.Bands) > 0 {
		out.Bands = append([]FGBandCfg(nil), b.Bands...)
	}
	if b.BlockProb != nil {
		out.BlockProb = b.BlockProb
	}
	return &out
}

func mergePunt(a, b *PuntCfg) *PuntCfg {
	if a == nil {
		c := *b
		return &c
	}
	out := *a
	if len(b.Bands) > 0 {
		out.Bands = append([]PuntBandCfg(nil), b.Bands...)
	}
	if b.BlockProb != nil {
		out.BlockProb = b.BlockProb
	}
	if b.PowerScale != nil {
		out.PowerScale = b.PowerScale
	}
	return &out
}
