// Package fastq computes read-level quality statistics from FASTQ files.
package fastq

import (
	"context"
	"errors"
	"fmt"
	"io"

	"biolab-core/fasta"
	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	biofastq "github.com/biogo/biogo/io/seqio/fastq"
	"github.com/biogo/biogo/seq/linear"
)

// ErrEmpty is returned for inputs with no reads or no bases.
var ErrEmpty = errors.New("FASTQ appears empty or invalid")

// Stats aggregates one or more FASTQ inputs. Quality values are Phred
// scores decoded with the Sanger (offset 33) encoding.
type Stats struct {
	Reads      int64
	Bases      int64
	NBases     int64
	PhredSum   int64
	PhredCount int64

	// Distributions, filled only when requested: value -> occurrences.
	LengthCounts map[int]int64
	PhredCounts  map[int]int64
}

// AvgLength is the mean read length.
func (s Stats) AvgLength() float64 { return ratio(s.Bases, s.Reads) }

// PropN is the fraction of bases called N.
func (s Stats) PropN() float64 { return ratio(s.NBases, s.Bases) }

// AvgPhred is the mean per-base quality.
func (s Stats) AvgPhred() float64 { return ratio(s.PhredSum, s.PhredCount) }

func ratio(a, b int64) float64 {
	if b == 0 {
		return 0
	}
	return float64(a) / float64(b)
}

// Merge folds o into s.
func (s *Stats) Merge(o Stats) {
	s.Reads += o.Reads
	s.Bases += o.Bases
	s.NBases += o.NBases
	s.PhredSum += o.PhredSum
	s.PhredCount += o.PhredCount
	s.LengthCounts = mergeCounts(s.LengthCounts, o.LengthCounts)
	s.PhredCounts = mergeCounts(s.PhredCounts, o.PhredCounts)
}

func mergeCounts(dst, src map[int]int64) map[int]int64 {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[int]int64, len(src))
	}
	for k, v := range src {
		dst[k] += v
	}
	return dst
}

func (s *Stats) add(q *linear.QSeq, keepDist bool) {
	s.Reads++
	s.Bases += int64(len(q.Seq))
	if keepDist {
		s.LengthCounts[len(q.Seq)]++
	}
	for _, ql := range q.Seq {
		if ql.L == 'N' || ql.L == 'n' {
			s.NBases++
		}
		p := int(ql.Q)
		s.PhredSum += int64(p)
		s.PhredCount++
		if keepDist {
			s.PhredCounts[p]++
		}
	}
}

// Compute reads path (plain or gzip, '-' for stdin) and aggregates its
// statistics. keepDist also records the length and quality distributions.
func Compute(ctx context.Context, path string, keepDist bool) (Stats, error) {
	rc, err := fasta.Open(path)
	if err != nil {
		return Stats{}, err
	}
	defer rc.Close()
	s, err := ComputeFrom(ctx, rc, keepDist)
	if err != nil {
		return Stats{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ComputeFrom is Compute over an open reader.
func ComputeFrom(ctx context.Context, r io.Reader, keepDist bool) (Stats, error) {
	var s Stats
	if keepDist {
		s.LengthCounts = map[int]int64{}
		s.PhredCounts = map[int]int64{}
	}
	tmpl := linear.NewQSeq("", nil, alphabet.DNA, alphabet.Sanger)
	sc := seqio.NewScanner(biofastq.NewReader(r, tmpl))
	for sc.Next() {
		if s.Reads%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return Stats{}, err
			}
		}
		q, ok := sc.Seq().(*linear.QSeq)
		if !ok {
			return Stats{}, fmt.Errorf("unexpected sequence type %T", sc.Seq())
		}
		s.add(q, keepDist)
	}
	if err := sc.Error(); err != nil {
		return Stats{}, err
	}
	if s.Reads == 0 || s.Bases == 0 {
		return Stats{}, ErrEmpty
	}
	return s, nil
}
