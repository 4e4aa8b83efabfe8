// Package pass designs lowpass and highpass biquad cascades.
//
// [ButterworthLP] and [ButterworthHP] return one [biquad.Coefficients]
// per second-order section, with a trailing first-order section for odd
// orders. The single sections come from the RBJ cookbook formulas in
// [LowpassRBJ] and [HighpassRBJ].
package pass
