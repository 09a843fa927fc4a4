package file

import (
	"github.com/custodia-labs/snipdeck-cli/internal/core/domain"
	"github.com/custodia-labs/snipdeck-cli/internal/core/ports/driven"
)

// BuildConfig folds values from the store over the domain defaults.
// Keys that are absent or zero-valued leave the default untouched, so a
// partial config file only overrides what it names.
func BuildConfig(store driven.ConfigStore) domain.Config {
	cfg := domain.DefaultConfig()

	if v := store.GetInt("launcher.window_size"); v > 0 {
		cfg.WindowSize = v
	}
	if v := store.GetInt("launcher.max_combined_size"); v > 0 {
		cfg.MaxCombinedSize = v
	}
	if v := store.GetString("snippets.path"); v != "" {
		cfg.SnippetsPath = v
	}
	if v := store.GetString("inject.command"); v != "" {
		cfg.InjectorCommand = v
	}
	if v, ok := store.Get("inject.notify"); ok {
		if b, isBool := v.(bool); isBool {
			cfg.Notify = b
		}
	}

	if v := store.GetInt("snippets.max_title_length"); v > 0 {
		cfg.Limits.MaxTitleLen = v
	}
	if v := store.GetInt("snippets.max_content_length"); v > 0 {
		cfg.Limits.MaxContentLen = v
	}

	cfg.Tuning = buildTuning(store, cfg.Tuning)
	return cfg
}

func buildTuning(store driven.ConfigStore, t domain.Tuning) domain.Tuning {
	if v := store.GetInt("search.prefix_score"); v > 0 {
		t.PrefixScore = v
	}
	if v := store.GetInt("search.word_score"); v > 0 {
		t.WordScore = v
	}
	if v := store.GetInt("search.word_penalty"); v > 0 {
		t.WordPenalty = v
	}
	if v := store.GetInt("search.substring_score"); v > 0 {
		t.SubstringScore = v
	}
	if v := store.GetInt("search.fuzzy_score"); v > 0 {
		t.FuzzyScore = v
	}
	if v := store.GetFloat("search.fuzzy_coverage"); v > 0 {
		t.FuzzyCoverage = v
	}
	if v := store.GetFloat("search.title_weight"); v > 0 {
		t.TitleWeight = v
	}
	if v := store.GetFloat("search.content_weight"); v > 0 {
		t.ContentWeight = v
	}
	if v := store.GetFloat("search.relative_threshold"); v > 0 {
		t.RelativeThreshold = v
	}
	if v := store.GetInt("search.min_score"); v > 0 {
		t.MinScore = v
	}
	if v := store.GetInt("search.max_results"); v > 0 {
		t.MaxResults = v
	}
	return t
}
