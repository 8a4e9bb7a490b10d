package scan

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Recognizer is the external text-recognition engine. It returns detected
// text blocks in detection order, duplicates included.
type Recognizer interface {
	RecognizeFile(ctx context.Context, imagePath string) ([]string, error)
}

// CommandRecognizer shells out to an external OCR program that prints one
// detected block per stdout line. The engine itself stays outside this repo.
type CommandRecognizer struct {
	command string
	args    []string
}

func NewCommandRecognizer(command string, args []string) *CommandRecognizer {
	return &CommandRecognizer{command: command, args: args}
}

func (r *CommandRecognizer) RecognizeFile(ctx context.Context, imagePath string) ([]string, error) {
	if strings.TrimSpace(r.command) == "" {
		return nil, errors.New("no OCR command configured (set OCR_COMMAND)")
	}

	args := append(append([]string{}, r.args...), imagePath)
	out, err := exec.CommandContext(ctx, r.command, args...).Output()
	if err != nil {
		return nil, fmt.Errorf("ocr command: %w", err)
	}

	lines := strings.Split(string(out), "\n")
	blocks := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			blocks = append(blocks, line)
		}
	}
	return blocks, nil
}
