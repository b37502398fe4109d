package wallet

import (
	"context"
	"sync"
)

// BatchError records one failed input together with its error message.
type BatchError struct {
	Address string `json:"address"`
	Error   string `json:"error"`
}

// BatchReport collects the outcome of a batch conversion. Both slices
// preserve the relative order of the inputs, and
// len(Conversions)+len(Errors) always equals the number of inputs.
type BatchReport struct {
	Conversions []ConversionResult `json:"conversions"`
	Errors      []BatchError       `json:"errors"`
}

// ConvertBatch converts addresses one by one, isolating individual failures
// into the error list instead of aborting. The whole batch is rejected when
// it is empty or exceeds maxCount (maxCount <= 0 disables the ceiling).
func ConvertBatch(addresses []string, maxCount int) (*BatchReport, error) {
	if err := checkBatchBounds(addresses, maxCount); err != nil {
		return nil, err
	}

	report := &BatchReport{
		Conversions: make([]ConversionResult, 0, len(addresses)),
	}
	for _, addr := range addresses {
		result, err := ConvertAddress(addr)
		if err != nil {
			report.Errors = append(report.Errors, BatchError{Address: addr, Error: err.Error()})
			continue
		}
		report.Conversions = append(report.Conversions, *result)
	}
	return report, nil
}

// ConvertBatchParallel behaves like ConvertBatch but fans the entries out to
// a bounded worker pool. Results are collected into indexed slots so that the
// report preserves input order regardless of completion order. If ctx is
// cancelled, entries not yet dispatched fail with the context error.
func ConvertBatchParallel(ctx context.Context, addresses []string, maxCount, workers int) (*BatchReport, error) {
	if err := checkBatchBounds(addresses, maxCount); err != nil {
		return nil, err
	}

	if workers <= 0 {
		workers = 1
	}
	if workers > len(addresses) {
		workers = len(addresses)
	}

	type slot struct {
		result *ConversionResult
		err    error
	}
	slots := make([]slot, len(addresses))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				result, err := ConvertAddress(addresses[idx])
				slots[idx] = slot{result: result, err: err}
			}
		}()
	}

dispatch:
	for idx := range addresses {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- idx:
		}
	}
	close(jobs)
	wg.Wait()

	report := &BatchReport{
		Conversions: make([]ConversionResult, 0, len(addresses)),
	}
	for idx, s := range slots {
		switch {
		case s.err != nil:
			report.Errors = append(report.Errors, BatchError{Address: addresses[idx], Error: s.err.Error()})
		case s.result != nil:
			report.Conversions = append(report.Conversions, *s.result)
		default:
			// never dispatched before cancellation
			report.Errors = append(report.Errors, BatchError{Address: addresses[idx], Error: ctx.Err().Error()})
		}
	}
	return report, nil
}

func checkBatchBounds(addresses []string, maxCount int) error {
	if len(addresses) == 0 {
		return ErrEmptyBatch.Wrap("no addresses to convert")
	}
	if maxCount > 0 && len(addresses) > maxCount {
		return ErrBatchTooLarge.Wrapf("%d addresses exceeds the limit of %d", len(addresses), maxCount)
	}
	return nil
}
