// Package project manages the on-disk layout of capital projects: one
// directory per project holding a metadata file, one workbook per item
// category, and the tax policy workbook.
package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"capital-viability/internal/config"
	"capital-viability/internal/schedule"
	"capital-viability/pkg/validation"
)

// File names inside a project directory.
const (
	metadataFile    = "metadata.json"
	investmentsFile = "investments.xlsx"
	costsFile       = "costs.xlsx"
	revenuesFile    = "revenues.xlsx"
	policyFile      = "policy.xlsx"
)

// ErrProjectExists indicates a create for a name already in use.
var ErrProjectExists = errors.New("project already exists")

// ErrProjectNotFound indicates a load for an unknown project name.
var ErrProjectNotFound = errors.New("project not found")

// Metadata describes a project independent of its financial contents.
type Metadata struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	ModifiedAt  time.Time `json:"modified_at"`
}

// Project is a fully loaded capital project: the three schedules plus the
// tax policy.
type Project struct {
	Metadata    Metadata
	Investments *schedule.InvestmentSchedule
	Costs       *schedule.CostSchedule
	Revenues    *schedule.RevenueSchedule
	Policy      config.TaxPolicy
}

// Manager creates, lists, loads, and saves projects under a base directory.
type Manager struct {
	dir    string
	logger *zap.Logger
}

// NewManager creates a project manager rooted at dir.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewManager(dir string, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{dir: dir, logger: logger}
}

// Create makes a new project directory seeded with empty workbooks and the
// given default policy.
func (m *Manager) Create(name, description string, policy config.TaxPolicy) error {
	if err := validation.ValidateProjectName(name); err != nil {
		return err
	}

	projectDir := filepath.Join(m.dir, name)
	if _, err := os.Stat(projectDir); err == nil {
		return fmt.Errorf("create project %q: %w", name, ErrProjectExists)
	}
	if err := os.MkdirAll(projectDir, 0755); err != nil {
		return fmt.Errorf("failed to create project directory %s: %w", projectDir, err)
	}

	now := time.Now()
	meta := Metadata{
		Name:        name,
		Description: description,
		CreatedAt:   now,
		ModifiedAt:  now,
	}
	if err := writeMetadata(projectDir, meta); err != nil {
		return err
	}

	empty := &Project{
		Metadata:    meta,
		Investments: schedule.NewInvestmentSchedule(),
		Costs:       schedule.NewCostSchedule(),
		Revenues:    schedule.NewRevenueSchedule(),
		Policy:      policy,
	}
	if err := m.writeWorkbooks(projectDir, empty); err != nil {
		return err
	}

	m.logger.Info("created project",
		zap.String("op", "project.Create"),
		zap.String("project", name),
	)
	return nil
}

// List returns the metadata of every project under the base directory,
// skipping directories without a readable metadata file.
func (m *Manager) List() ([]Metadata, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read projects directory %s: %w", m.dir, err)
	}

	var projects []Metadata
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := readMetadata(filepath.Join(m.dir, entry.Name()))
		if err != nil {
			m.logger.Warn("skipping directory without readable metadata",
				zap.String("op", "project.List"),
				zap.String("dir", entry.Name()),
				zap.Error(err),
			)
			continue
		}
		projects = append(projects, meta)
	}
	return projects, nil
}

// Load reads a project's metadata, schedules, and policy from disk. Rows
// that fail validation are skipped with a warning rather than aborting the
// load.
func (m *Manager) Load(name string) (*Project, error) {
	projectDir := filepath.Join(m.dir, name)
	if _, err := os.Stat(projectDir); err != nil {
		return nil, fmt.Errorf("load project %q: %w", name, ErrProjectNotFound)
	}

	meta, err := readMetadata(projectDir)
	if err != nil {
		return nil, err
	}

	project := &Project{
		Metadata:    meta,
		Investments: schedule.NewInvestmentSchedule(),
		Costs:       schedule.NewCostSchedule(),
		Revenues:    schedule.NewRevenueSchedule(),
	}

	if err := m.loadSchedules(projectDir, project); err != nil {
		return nil, err
	}

	policy, err := readPolicy(filepath.Join(projectDir, policyFile))
	if err != nil {
		return nil, err
	}
	project.Policy = policy

	return project, nil
}

// Save writes a project's schedules, policy, and refreshed metadata back to
// its directory.
func (m *Manager) Save(project *Project) error {
	projectDir := filepath.Join(m.dir, project.Metadata.Name)
	if _, err := os.Stat(projectDir); err != nil {
		return fmt.Errorf("save project %q: %w", project.Metadata.Name, ErrProjectNotFound)
	}

	project.Metadata.ModifiedAt = time.Now()
	if err := writeMetadata(projectDir, project.Metadata); err != nil {
		return err
	}
	return m.writeWorkbooks(projectDir, project)
}

func writeMetadata(projectDir string, meta Metadata) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}
	path := filepath.Join(projectDir, metadataFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func readMetadata(projectDir string) (Metadata, error) {
	path := filepath.Join(projectDir, metadataFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return Metadata{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return meta, nil
}
