package pass

import "github.com/cwbudde/algo-voicemorph/dsp/filter/biquad"

// ButterworthLP designs a lowpass Butterworth cascade.
//
// For odd orders, the final section is first-order (B2=A2=0).
func ButterworthLP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	return butterworth(freq, order, sampleRate, LowpassRBJ, butterworthFirstOrderLP)
}

// ButterworthHP designs a highpass Butterworth cascade.
//
// For odd orders, the final section is first-order (B2=A2=0).
func ButterworthHP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	return butterworth(freq, order, sampleRate, HighpassRBJ, butterworthFirstOrderHP)
}

func butterworth(
	freq float64,
	order int,
	sampleRate float64,
	second func(freq, q, sampleRate float64) biquad.Coefficients,
	first func(freq, sampleRate float64) biquad.Coefficients,
) []biquad.Coefficients {
	if order <= 0 {
		return nil
	}

	sections := make([]biquad.Coefficients, 0, (order+1)/2)
	for i := order/2 - 1; i >= 0; i-- {
		sections = append(sections, second(freq, butterworthQ(order, i), sampleRate))
	}

	if order%2 != 0 {
		sections = append(sections, first(freq, sampleRate))
	}

	return sections
}
