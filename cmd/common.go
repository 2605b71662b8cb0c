/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/valpere/gemtran/internal/config"
	"github.com/valpere/gemtran/internal/store"
	"github.com/valpere/gemtran/internal/translator"
)

// buildTranslator constructs the Gemini client, wrapped with the history
// recorder when history is enabled. The returned close func is never nil.
func buildTranslator(cfg *config.Config, log *slog.Logger) (translator.Translator, func() error, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	client := translator.NewGeminiClient(cfg.Gemini, log)
	if !cfg.History.Enabled {
		return client, func() error { return nil }, nil
	}

	db, err := openHistory(cfg.History.Path)
	if err != nil {
		return nil, nil, err
	}
	return store.NewRecorder(client, db, client.Model(), log), db.Close, nil
}

func openHistory(path string) (*store.Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}
	db, err := store.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	return db, nil
}
