// Package loader reads and writes the binary process control block file:
// a little-endian uint32 count followed by one (burst, priority, arrival)
// uint32 triple per process.
package loader

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/nafemage/OSProject2/internal/core"
	"github.com/nafemage/OSProject2/internal/queue"
)

var (
	ErrInvalidFilename = errors.New("invalid pcb filename")
	ErrTruncatedFile   = errors.New("truncated pcb file")
	ErrValueOutOfRange = errors.New("pcb value does not fit in uint32")
)

var byteOrder = binary.LittleEndian

// LoadProcessControlBlocks reads the pcb file at inputFile into a ready queue.
func LoadProcessControlBlocks(inputFile string) (*queue.ReadyQueue, error) {
	if strings.TrimSpace(inputFile) == "" || strings.ContainsRune(inputFile, 0) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFilename, inputFile)
	}
	f, err := os.Open(inputFile)
	if err != nil {
		return nil, fmt.Errorf("opening pcb file: %w", err)
	}
	defer f.Close()

	return DecodeProcessControlBlocks(f)
}

// DecodeProcessControlBlocks parses the pcb format from r. Bytes after the
// last announced block are ignored.
func DecodeProcessControlBlocks(r io.Reader) (*queue.ReadyQueue, error) {
	var count uint32
	if err := readValue(r, &count); err != nil {
		return nil, fmt.Errorf("reading pcb count: %w", err)
	}

	// count comes from the file, so do not trust it for preallocation
	readyQueue := queue.New(int(min(count, 1024)))
	for i := uint32(0); i < count; i++ {
		var fields [3]uint32 // burst, priority, arrival
		for j := range fields {
			if err := readValue(r, &fields[j]); err != nil {
				return nil, fmt.Errorf("reading pcb #%d: %w", i+1, err)
			}
		}
		block := core.NewProcessControlBlock(int(i)+1, int(fields[2]), int(fields[1]), int(fields[0]))
		if err := readyQueue.PushBack(block); err != nil {
			return nil, err
		}
	}
	return readyQueue, nil
}

func readValue(r io.Reader, value *uint32) error {
	err := binary.Read(r, byteOrder, value)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncatedFile
	}
	return err
}

// WriteProcessControlBlocks writes blocks to outputFile in the pcb format.
func WriteProcessControlBlocks(outputFile string, blocks []*core.ProcessControlBlock) error {
	if strings.TrimSpace(outputFile) == "" {
		return fmt.Errorf("%w: %q", ErrInvalidFilename, outputFile)
	}
	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("creating pcb file: %w", err)
	}
	if err := EncodeProcessControlBlocks(f, blocks); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func EncodeProcessControlBlocks(w io.Writer, blocks []*core.ProcessControlBlock) error {
	values := make([]uint32, 0, 1+3*len(blocks))
	values = append(values, uint32(len(blocks)))
	for _, block := range blocks {
		for _, value := range []int{block.TotalBurstTime, block.Priority, block.Arrival} {
			if value < 0 || int64(value) > math.MaxUint32 {
				return fmt.Errorf("%w: %s", ErrValueOutOfRange, block)
			}
			values = append(values, uint32(value))
		}
	}
	return binary.Write(w, byteOrder, values)
}
