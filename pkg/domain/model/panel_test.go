package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/blockrelay/pkg/domain/model"
)

func TestPanelProfile_Validate(t *testing.T) {
	t.Run("default profile is valid", func(t *testing.T) {
		gt.NoError(t, model.DefaultPanelProfile().Validate())
	})

	t.Run("empty profile filled with defaults", func(t *testing.T) {
		p := model.PanelProfile{ErrorSelector: ".flash-error"}.WithDefaults()
		gt.NoError(t, p.Validate())
		gt.Equal(t, p.ErrorSelector, ".flash-error")
		gt.Equal(t, p.LoginPath, model.DefaultLoginPath)
	})

	t.Run("missing selector", func(t *testing.T) {
		p := model.DefaultPanelProfile()
		p.SuccessSelector = " "
		err := p.Validate()
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("panel profile field is required")
	})

	t.Run("relative path", func(t *testing.T) {
		p := model.DefaultPanelProfile()
		p.BlocklistPath = "blocklist"
		gt.Error(t, p.Validate())
	})
}
