// internal/defs/loader.go
package defs

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed data/*.json
var embedded embed.FS

// Library — все определения игры.
type Library struct {
	Enemies      map[string]EnemyDefinition
	Turrets      map[string]TurretDefinition
	SpawnWeights []SpawnWeight
	// порядок из файла, нужен для запасного выбора "первого типа"
	enemyOrder []string
}

// FirstEnemy — запасной вариант при неизвестном id.
func (l *Library) FirstEnemy() (EnemyDefinition, bool) {
	if len(l.enemyOrder) == 0 {
		return EnemyDefinition{}, false
	}
	def, ok := l.Enemies[l.enemyOrder[0]]
	return def, ok
}

// Default загружает определения, встроенные в бинарник.
func Default() (*Library, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded definitions: %w", err)
	}
	return Load(sub)
}

// LoadDir загружает определения из каталога на диске.
func LoadDir(dir string) (*Library, error) {
	if _, err := os.Stat(filepath.Join(dir, "enemies.json")); err != nil {
		return nil, fmt.Errorf("failed to read definitions dir %s: %w", dir, err)
	}
	return Load(os.DirFS(dir))
}

// Load reads enemies.json, turrets.json and spawn_weights.json from fsys.
func Load(fsys fs.FS) (*Library, error) {
	var enemyDefs []EnemyDefinition
	if err := readJSON(fsys, "enemies.json", &enemyDefs); err != nil {
		return nil, err
	}
	var turretDefs []TurretDefinition
	if err := readJSON(fsys, "turrets.json", &turretDefs); err != nil {
		return nil, err
	}
	var weights []SpawnWeight
	if err := readJSON(fsys, "spawn_weights.json", &weights); err != nil {
		return nil, err
	}

	lib := &Library{
		Enemies:      make(map[string]EnemyDefinition, len(enemyDefs)),
		Turrets:      make(map[string]TurretDefinition, len(turretDefs)),
		SpawnWeights: weights,
	}
	for _, def := range enemyDefs {
		if def.ID == "" {
			return nil, fmt.Errorf("enemy definition without id: %q", def.Name)
		}
		if _, dup := lib.Enemies[def.ID]; dup {
			return nil, fmt.Errorf("duplicate enemy definition %s", def.ID)
		}
		lib.Enemies[def.ID] = def
		lib.enemyOrder = append(lib.enemyOrder, def.ID)
	}
	for _, def := range turretDefs {
		if def.ID == "" {
			return nil, fmt.Errorf("turret definition without id: %q", def.Name)
		}
		lib.Turrets[def.ID] = def
	}
	return lib, nil
}

func readJSON(fsys fs.FS, name string, out interface{}) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", name, err)
	}
	return nil
}
