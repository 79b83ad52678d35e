// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup. A missing sessions root is not a
// configuration error: it is reported by the run itself.
func (cfg *StructuredConfig) validate() error {
	if cfg.Workers.Concurrency < 1 {
		return fmt.Errorf("%w: concurrency must be positive, got %d", ErrInvalidWorkerConfigs, cfg.Workers.Concurrency)
	}

	if !strings.HasPrefix(cfg.Source.Suffix, ".") {
		return fmt.Errorf("%w: suffix %q must start with a dot", ErrInvalidSourceConfigs, cfg.Source.Suffix)
	}

	return nil
}
