package services

import (
	"log"

	"sheetbase/internal/apperrors"
	"sheetbase/internal/repositories"
	"sheetbase/internal/utils"
)

// Settings is the installation-wide configuration exposed to the admin
// surface.
type Settings struct {
	AllowFrontendUpload string `json:"allow_frontend_upload"`
	TableStyle          string `json:"table_style"`
	ShowSearchBar       string `json:"show_search_bar"`
	MinRoleView         string `json:"min_role_view"`
}

var defaultSettings = Settings{
	AllowFrontendUpload: "off",
	TableStyle:          "dark",
	ShowSearchBar:       "on",
	MinRoleView:         utils.RoleSubscriber,
}

var allowedTableStyles = []string{"dark", "light", "system"}

type SettingsService struct {
	repo *repositories.SettingsRepository
}

func NewSettingsService(repo *repositories.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

func (s *SettingsService) Get() (Settings, error) {
	out := defaultSettings
	var err error
	if out.AllowFrontendUpload, err = s.value("allow_frontend_upload", out.AllowFrontendUpload); err != nil {
		return out, apperrors.Persistence("failed to load settings", err)
	}
	if out.TableStyle, err = s.value("table_style", out.TableStyle); err != nil {
		return out, apperrors.Persistence("failed to load settings", err)
	}
	if out.ShowSearchBar, err = s.value("show_search_bar", out.ShowSearchBar); err != nil {
		return out, apperrors.Persistence("failed to load settings", err)
	}
	if out.MinRoleView, err = s.value("min_role_view", out.MinRoleView); err != nil {
		return out, apperrors.Persistence("failed to load settings", err)
	}
	return out, nil
}

// Update sanitizes and stores each field. Out-of-set values fall back to
// their defaults rather than erroring.
func (s *SettingsService) Update(in Settings) (Settings, error) {
	sanitized := Settings{
		AllowFrontendUpload: onOff(in.AllowFrontendUpload),
		TableStyle:          oneOf(in.TableStyle, allowedTableStyles, defaultSettings.TableStyle),
		ShowSearchBar:       onOff(in.ShowSearchBar),
		MinRoleView:         oneOf(in.MinRoleView, utils.AssignableRoles, defaultSettings.MinRoleView),
	}

	pairs := map[string]string{
		"allow_frontend_upload": sanitized.AllowFrontendUpload,
		"table_style":           sanitized.TableStyle,
		"show_search_bar":       sanitized.ShowSearchBar,
		"min_role_view":         sanitized.MinRoleView,
	}
	for key, value := range pairs {
		if err := s.repo.Set(key, value); err != nil {
			return sanitized, apperrors.Persistence("failed to save settings", err)
		}
	}
	return sanitized, nil
}

// MinViewRole is read on every public request; a storage failure falls back
// to the default rather than blocking reads.
func (s *SettingsService) MinViewRole() string {
	role, err := s.value("min_role_view", defaultSettings.MinRoleView)
	if err != nil {
		log.Printf("failed to load min_role_view setting: %v", err)
		return defaultSettings.MinRoleView
	}
	if !utils.IsAssignableRole(role) {
		return defaultSettings.MinRoleView
	}
	return role
}

func (s *SettingsService) value(key, fallback string) (string, error) {
	v, ok, err := s.repo.Get(key)
	if err != nil {
		return fallback, err
	}
	if !ok {
		return fallback, nil
	}
	return v, nil
}

func onOff(v string) string {
	if v == "on" {
		return "on"
	}
	return "off"
}

func oneOf(v string, allowed []string, fallback string) string {
	if utils.Contains(allowed, v) {
		return v
	}
	return fallback
}
