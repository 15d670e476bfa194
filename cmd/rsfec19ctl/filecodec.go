package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/serialrsfec/rsfec19/internal/blockcodec"
	"github.com/serialrsfec/rsfec19/internal/config"
)

// runEncode reads 19-bit tagged words (each framed as a 4-byte
// big-endian value, matching the transport harness's wire framing)
// from in, groups them into 121-word blocks, zero-padding the final
// short block, and writes each block's 128 protected words to out in
// the same framing.
func runEncode(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	crcEnable := fs.Bool("crc", cfg.GetBlockCRCEnable(), "enable the CRC-18 check word")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("usage: rsfec19ctl encode [-crc] <in> <out>")
	}

	in, err := os.Open(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	out, err := os.Create(fs.Arg(1))
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	codec := blockcodec.New()
	blocks := 0
	for {
		read, n, err := readWords(in, blockcodec.DataWords)
		if err != nil {
			return fmt.Errorf("read block %d: %w", blocks, err)
		}
		if n == 0 {
			break
		}

		var words [blockcodec.DataWords]uint32
		copy(words[:], read)

		block := codec.Encode(words, *crcEnable)
		if err := writeWords(out, block[:]); err != nil {
			return fmt.Errorf("write block %d: %w", blocks, err)
		}
		blocks++
	}

	log.Printf("encode: wrote %d block(s)", blocks)
	return nil
}

// runDecode reads 128-word protected blocks from in, corrects and
// verifies each, and writes the recovered tagged words to out, logging
// any block that was uncorrectable or failed its CRC check.
func runDecode(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	crcEnable := fs.Bool("crc", cfg.GetBlockCRCEnable(), "the block was encoded with the CRC-18 check word")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("usage: rsfec19ctl decode [-crc] <in> <out>")
	}

	in, err := os.Open(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	out, err := os.Create(fs.Arg(1))
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	codec := blockcodec.New()
	blocks := 0
	for {
		read, n, err := readWords(in, blockcodec.BlockWords)
		if err != nil {
			return fmt.Errorf("read block %d: %w", blocks, err)
		}
		if n == 0 {
			break
		}
		if n != blockcodec.BlockWords {
			return fmt.Errorf("block %d: truncated, got %d of %d words", blocks, n, blockcodec.BlockWords)
		}

		var block blockcodec.Block
		copy(block[:], read)
		decoded, status := codec.Decode(block, *crcEnable)
		if status.Uncorrectable {
			log.Printf("decode: block %d uncorrectable", blocks)
		}
		if *crcEnable && !status.CRCPass {
			log.Printf("decode: block %d failed CRC check", blocks)
		}

		if err := writeWords(out, decoded); err != nil {
			return fmt.Errorf("write block %d: %w", blocks, err)
		}
		blocks++
	}

	log.Printf("decode: processed %d block(s)", blocks)
	return nil
}

// readWords reads up to count 4-byte big-endian words from r. n
// reports how many words were actually present before EOF; the
// returned slice is always length count, zero-padded past n.
func readWords(r io.Reader, count int) ([]uint32, int, error) {
	words := make([]uint32, count)
	buf := make([]byte, 4*count)
	read, err := io.ReadFull(r, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return words, 0, err
	}
	n := read / 4
	for i := 0; i < n; i++ {
		words[i] = binary.BigEndian.Uint32(buf[i*4:])
	}
	return words, n, nil
}

func writeWords(w io.Writer, words []uint32) error {
	buf := make([]byte, 4*len(words))
	for i, word := range words {
		binary.BigEndian.PutUint32(buf[i*4:], word)
	}
	_, err := w.Write(buf)
	return err
}
