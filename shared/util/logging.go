package util

import (
	"io"
	"log"
	"os"

	"github.com/natefinch/lumberjack"
)

// LogRotation descreve o arquivo de log rotativo.
type LogRotation struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// SetupLogging manda o log padrão para o terminal e para um arquivo rotativo.
// Path vazio mantém só o terminal. O Closer devolvido fecha o arquivo.
func SetupLogging(rot LogRotation) io.Closer {
	log.SetFlags(log.Ltime | log.Lshortfile)
	if rot.Path == "" {
		log.SetOutput(os.Stderr)
		return nopCloser{}
	}

	file := &lumberjack.Logger{
		Filename:   rot.Path,
		MaxSize:    rot.MaxSizeMB,
		MaxBackups: rot.MaxBackups,
		MaxAge:     rot.MaxAgeDays,
	}
	log.SetOutput(io.MultiWriter(os.Stderr, file))
	return file
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
