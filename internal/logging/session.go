package logging

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	sessionPrefix = "session_"
	sessionSuffix = ".log"
	logDirPerm    = 0o755
	logFilePerm   = 0o600
)

// GenerateSessionID creates a unique session identifier.
// Format: YYYYMMDD_HHMMSS_xxxx (timestamp + 4 random hex chars)
func GenerateSessionID() string {
	random := make([]byte, 2)
	_, _ = rand.Read(random)
	return time.Now().Format("20060102_150405") + "_" + hex.EncodeToString(random)
}

// SessionFilename generates the log filename for a session ID.
// Example: "20251217_205106_a7b3" -> "session_20251217_205106_a7b3.log"
func SessionFilename(sessionID string) string {
	return sessionPrefix + sessionID + sessionSuffix
}

// ParseSessionFilename extracts the session ID from a log filename.
func ParseSessionFilename(filename string) (string, bool) {
	if !strings.HasPrefix(filename, sessionPrefix) || !strings.HasSuffix(filename, sessionSuffix) {
		return "", false
	}
	id := strings.TrimSuffix(strings.TrimPrefix(filename, sessionPrefix), sessionSuffix)
	if id == "" {
		return "", false
	}
	return id, true
}

// OpenSessionLog creates logDir if needed and opens a fresh log file for
// sessionID in append mode. The caller closes the file.
func OpenSessionLog(logDir, sessionID string) (*os.File, error) {
	if err := os.MkdirAll(logDir, logDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", logDir, err)
	}
	path := filepath.Join(logDir, SessionFilename(sessionID))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}
