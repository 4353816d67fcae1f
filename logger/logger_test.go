package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		jsonOutput bool
		verbosity  int
		wantErr    bool
	}{
		{
			name:       "JSON output mode",
			jsonOutput: true,
			verbosity:  VerbosityInfo,
			wantErr:    false,
		},
		{
			name:       "Console output mode",
			jsonOutput: false,
			verbosity:  VerbosityUser,
			wantErr:    false,
		},
		{
			name:       "Console debug mode",
			jsonOutput: false,
			verbosity:  VerbosityDebug,
			wantErr:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset global logger
			Logger = nil
			JSONOutput = false

			err := Initialize(tt.jsonOutput, tt.verbosity)
			if (err != nil) != tt.wantErr {
				t.Errorf("Initialize() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr {
				if Logger == nil {
					t.Error("Initialize() did not set global Logger")
				}
				if JSONOutput != tt.jsonOutput {
					t.Errorf("Initialize() JSONOutput = %v, want %v", JSONOutput, tt.jsonOutput)
				}
			}

			// Cleanup
			if Logger != nil {
				Logger.Sync()
				Logger = nil
			}
		})
	}
}

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{VerbosityUser, zapcore.WarnLevel},
		{VerbosityInfo, zapcore.InfoLevel},
		{VerbosityDebug, zapcore.DebugLevel},
		{VerbosityTrace, zapcore.DebugLevel},
		{7, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		if got := VerbosityToLevel(tt.verbosity); got != tt.want {
			t.Errorf("VerbosityToLevel(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestLevelName(t *testing.T) {
	if got := LevelName(VerbosityUser); got != "User" {
		t.Errorf("LevelName(0) = %q, want %q", got, "User")
	}
	if got := LevelName(VerbosityTrace + 2); got != "Trace (-vvv+)" {
		t.Errorf("LevelName(%d) = %q, want %q", VerbosityTrace+2, got, "Trace (-vvv+)")
	}
}

func TestPackageWrappersNilSafe(t *testing.T) {
	// Wrappers must not panic when the global logger was cleared.
	Logger = nil
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("wrapper panicked with nil Logger: %v", r)
		}
		Logger = nil
	}()

	Info("info")
	Infof("info %d", 1)
	Infow("info", "key", "value")
	Warn("warn")
	Error("error")
	Debugw("debug", "key", "value")
}
