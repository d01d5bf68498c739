package slider

import "math"

// 边界哨兵角度
// 最大值使用 359° 而不是 360°，正上方留出 1° 的死区
const (
	MinOffset = 0.0
	MaxOffset = 359.0
)

// binEpsilon 吸收 (max-min)/step 的浮点误差，例如 (0.3-0)/0.1
const binEpsilon = 1e-9

// Bins 量化分箱表：从 min 开始、间隔 step 的升序值
// (max-min) 不是 step 的整数倍时最后一个分箱小于 max
type Bins struct {
	min, max float64
	values   []float64
}

// NewBins 创建分箱表
func NewBins(lo, hi, step float64) (Bins, error) {
	if err := ValidateRange(lo, hi, step); err != nil {
		return Bins{}, err
	}
	n := int(math.Floor((hi-lo)/step+binEpsilon)) + 1
	values := make([]float64, n)
	for i := range values {
		values[i] = float64(i)*step + lo
	}
	return Bins{min: lo, max: hi, values: values}, nil
}

// Len 分箱数量
func (b Bins) Len() int {
	return len(b.values)
}

// Values 返回分箱值的副本
func (b Bins) Values() []float64 {
	return append([]float64(nil), b.values...)
}

// Quantize 把角度映射为分箱值
//
// 哨兵角度直接返回边界：MinOffset → min，MaxOffset → max。
// 其余角度先换算成原始值 offset/360*(max-min)+min，
// 再返回最后一个"上邻分箱大于原始值"的分箱；没有上邻时返回最后一个分箱。
func (b Bins) Quantize(offset float64) float64 {
	switch offset {
	case MinOffset:
		return b.min
	case MaxOffset:
		return b.max
	}
	if len(b.values) == 0 {
		return b.min
	}

	raw := offset/360*(b.max-b.min) + b.min
	for i := 1; i < len(b.values); i++ {
		if raw < b.values[i] {
			return b.values[i-1]
		}
	}
	return b.values[len(b.values)-1]
}
