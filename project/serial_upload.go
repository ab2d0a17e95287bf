package project

import (
	"fmt"
	"io"
	"strings"
	"time"

	"g2rapid/common/file"
	"g2rapid/common/logger"

	"github.com/tarm/serial"
)

const (
	OPEN_SERIAL_DEV_ERROR  = "Unable to open serial port"
	NOT_FOUND_SERIAL_ERROR = "Not found serial port"
)

type SerialConfig struct {
	Name        string
	Baud        int
	ReadTimeout time.Duration
}

// WriteProgramLines sends program one line at a time with CRLF endings, the
// framing controller serial consoles expect. It returns the bytes written.
func WriteProgramLines(w io.Writer, program string) (int, error) {
	total := 0
	for _, line := range splitLines(strings.TrimRight(program, "\r\n")) {
		n, err := io.WriteString(w, line+"\r\n")
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// UploadProgram pushes a generated module to a controller over a serial line.
func UploadProgram(cfg SerialConfig, program string) error {
	if !file.Exists(cfg.Name) {
		return fmt.Errorf("%s %s", NOT_FOUND_SERIAL_ERROR, cfg.Name)
	}
	port, err := serial.OpenPort(&serial.Config{Name: cfg.Name, Baud: cfg.Baud, ReadTimeout: cfg.ReadTimeout})
	if err != nil {
		logger.Errorf("%s %s: %s", OPEN_SERIAL_DEV_ERROR, cfg.Name, err)
		return fmt.Errorf("%s %s: %w", OPEN_SERIAL_DEV_ERROR, cfg.Name, err)
	}
	defer port.Close()

	n, err := WriteProgramLines(port, program)
	if err != nil {
		return fmt.Errorf("upload to %s after %d bytes: %w", cfg.Name, n, err)
	}
	if err := port.Flush(); err != nil {
		return err
	}
	logger.Infof("Uploaded %d bytes to %s", n, cfg.Name)
	return nil
}
