package project

import (
	"fmt"

	"g2rapid/common/file"
	"g2rapid/common/logger"
)

// WriteRapidFile formats a full module from the settings and writes it to
// outputFile.
func WriteRapidFile(rapidLines []string, outputFile string, settings *AppSettings) error {
	module, err := BuildRapidModule(rapidLines, settings)
	if err != nil {
		logger.Errorf("Error writing RAPID file: %v", err)
		return err
	}
	if err := file.WriteFileWithSync(outputFile, []byte(module)); err != nil {
		logger.Errorf("Error writing RAPID file: %v", err)
		return fmt.Errorf("write %s: %w", outputFile, err)
	}
	logger.Infof("RAPID code successfully written to %s", outputFile)
	return nil
}
