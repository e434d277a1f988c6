package rawview

import (
	"fmt"
	"math"
)

// StatisticsFlags controls which statistics to compute.
type StatisticsFlags int

const (
	StatNone   StatisticsFlags = 0
	StatMedian StatisticsFlags = 1
	StatMean   StatisticsFlags = 2
	StatStdDev StatisticsFlags = 4
	StatAll                    = StatMedian | StatMean | StatStdDev
)

// ChannelStatistics holds the statistics of one channel of a buffer.
// Min and Max are always filled in.
type ChannelStatistics struct {
	Min    int
	Max    int
	Median float64
	Mean   float64
	StdDev float64
}

func (s ChannelStatistics) String() string {
	return fmt.Sprintf("{Min=%d, Max=%d, Median=%.1f, Mean=%.3f, StdDev=%.3f}", s.Min, s.Max, s.Median, s.Mean, s.StdDev)
}

// histogram counts every value of channel ch of buf.
func (b *ImageBuffer) histogram(ch int) []uint32 {
	if b.Depth == 8 {
		h := make([]uint32, 1<<8)
		for i := ch; i < len(b.Pix8); i += b.Channels {
			h[b.Pix8[i]]++
		}
		return h
	}
	h := make([]uint32, 1<<16)
	for i := ch; i < len(b.Pix16); i += b.Channels {
		h[b.Pix16[i]]++
	}
	return h
}

// Statistics computes per-channel statistics of buf from an exact
// histogram of each channel.
func (b *ImageBuffer) Statistics(flags StatisticsFlags) ([]ChannelStatistics, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	out := make([]ChannelStatistics, b.Channels)
	numPixels := int64(b.Width) * int64(b.Height)
	for ch := range out {
		out[ch] = histogramStatistics(b.histogram(ch), numPixels, flags)
	}
	return out, nil
}

func histogramStatistics(hist []uint32, numPixels int64, flags StatisticsFlags) ChannelStatistics {
	var result ChannelStatistics
	result.Min = -1
	for v, n := range hist {
		if n == 0 {
			continue
		}
		if result.Min < 0 {
			result.Min = v
		}
		result.Max = v
	}

	if flags&StatMedian != 0 {
		// Lower and upper middle samples, averaged for even counts.
		lo, hi := (numPixels-1)/2, numPixels/2
		var seen int64
		loVal, hiVal := -1, -1
		for v, n := range hist {
			seen += int64(n)
			if loVal < 0 && seen > lo {
				loVal = v
			}
			if seen > hi {
				hiVal = v
				break
			}
		}
		result.Median = float64(loVal+hiVal) / 2
	}

	if flags&StatMean != 0 || flags&StatStdDev != 0 {
		var total float64
		for v, n := range hist {
			total += float64(n) * float64(v)
		}
		result.Mean = total / float64(numPixels)

		if flags&StatStdDev != 0 && numPixels > 1 {
			var sse float64
			for v, n := range hist {
				d := float64(v) - result.Mean
				sse += float64(n) * d * d
			}
			result.StdDev = math.Sqrt(sse / float64(numPixels-1))
		}
	}
	return result
}
