package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/serialrsfec/rsfec19/internal/blockcodec"
	"github.com/serialrsfec/rsfec19/internal/config"
	"github.com/serialrsfec/rsfec19/internal/tracestore"
	"github.com/serialrsfec/rsfec19/internal/transport"
)

// runSimulate generates randomized blocks, carries them across a
// loopback UDP transport with the configured injected error rate, and
// records the decode outcome of each block to the trace store.
func runSimulate(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	blocks := fs.Int("blocks", 100, "number of blocks to simulate")
	crcEnable := fs.Bool("crc", cfg.GetBlockCRCEnable(), "enable the CRC-18 check word")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := tracestore.Open(cfg.GetTraceDatabasePath(), log.Default())
	if err != nil {
		return fmt.Errorf("open trace store: %w", err)
	}
	defer store.Close()

	localPort := int(cfg.GetTransportLocalPort())
	remotePort := int(cfg.GetTransportRemotePort())
	sender, err := transport.NewHarness(localPort, cfg.GetTransportRemoteAddress(), remotePort)
	if err != nil {
		return fmt.Errorf("create sender harness: %w", err)
	}
	if err := sender.Open(); err != nil {
		return fmt.Errorf("open sender harness: %w", err)
	}
	defer sender.Close()
	sender.SetErrorRate(cfg.GetTransportErrorRate())

	receiver, err := transport.NewHarness(remotePort, "127.0.0.1", localPort)
	if err != nil {
		return fmt.Errorf("create receiver harness: %w", err)
	}
	if err := receiver.Open(); err != nil {
		return fmt.Errorf("open receiver harness: %w", err)
	}
	defer receiver.Close()

	codec := blockcodec.New()
	runID := uuid.New().String()
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	log.Printf("simulate: run %s, %s blocks, error rate %.4f", runID, humanize.Comma(int64(*blocks)), cfg.GetTransportErrorRate())

	for seq := 0; seq < *blocks; seq++ {
		select {
		case <-ctx.Done():
			log.Printf("simulate: stopping early at block %d", seq)
			return nil
		default:
		}

		var words [blockcodec.DataWords]uint32
		for i := range words {
			words[i] = uint32(r.Intn(1 << 19))
		}
		block := codec.Encode(words, *crcEnable)

		if err := sender.SendBlock(block[:]); err != nil {
			return fmt.Errorf("send block %d: %w", seq, err)
		}

		received, err := waitForBlock(receiver, blockcodec.BlockWords, time.Second)
		if err != nil {
			return fmt.Errorf("receive block %d: %w", seq, err)
		}

		var recvBlock blockcodec.Block
		copy(recvBlock[:], received)
		_, status := codec.Decode(recvBlock, *crcEnable)

		trace := &tracestore.BlockTrace{
			RunID:           runID,
			Sequence:        uint64(seq),
			CorrectedErrors: status.CorrectedErrors,
			Uncorrectable:   status.Uncorrectable,
			CRCPass:         status.CRCPass || !*crcEnable,
		}
		if err := store.Record(trace); err != nil {
			return fmt.Errorf("record trace for block %d: %w", seq, err)
		}
	}

	summary, err := store.RunSummary(runID)
	if err != nil {
		return fmt.Errorf("summarize run %s: %w", runID, err)
	}
	printSummary(summary)
	return nil
}

func waitForBlock(h *transport.Harness, wordCount int, timeout time.Duration) ([]uint32, error) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		words, err := h.RecvBlock(wordCount)
		if err != nil {
			return nil, err
		}
		if words != nil {
			return words, nil
		}
		time.Sleep(time.Millisecond)
	}
	return nil, fmt.Errorf("timed out waiting for block")
}

func printSummary(s tracestore.RunSummary) {
	fmt.Println(colorize("1", "run "+s.RunID))
	fmt.Printf("blocks:          %s\n", humanize.Comma(int64(s.Blocks)))
	fmt.Printf("symbols corrected: %s\n", humanize.Comma(int64(s.TotalCorrected)))
	fmt.Printf("uncorrectable:   %s\n", humanize.Comma(int64(s.UncorrectableRuns)))
	fmt.Printf("crc failures:    %s\n", humanize.Comma(int64(s.CRCFailures)))
}
