// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"golang.org/x/text/language"

	"github.com/statteach/statlab/internal/i18n"
)

func init() {
	i18n.Register(language.Chinese, map[string]string{
		"Descriptive Statistical Analysis": "描述性统计分析",
		"Statistical Indicator":            "统计指标",
		"Value":                            "数值",
		"Sample Size":                      "样本数量",
		"Sum":                              "总和",
		"Mean":                             "均值",
		"Median":                           "中位数",
		"Mode":                             "众数",
		"Minimum":                          "最小值",
		"Maximum":                          "最大值",
		"Range":                            "范围",
		"First Quartile":                   "第一四分位数",
		"Third Quartile":                   "第三四分位数",
		"Interquartile Range":              "四分位距",
		"Variance":                         "方差",
		"Standard Deviation":               "标准差",
		"Skewness":                         "偏度",
		"Kurtosis":                         "峰度",
		"Coefficient of Variation":         "变异系数",
		"Variability":                      "变异程度",
		"approximately symmetric":          "近似对称",
		"right-skewed (positive)":          "右偏（正偏）",
		"left-skewed (negative)":           "左偏（负偏）",
		"leptokurtic":                      "尖峰",
		"platykurtic":                      "平峰",
		"Coefficient of variation is %s":   "变异系数为%s",
		", low variability":                "，变异较小",

		"All values are identical; skewness, kurtosis and coefficient of variation are reported as 0.": "所有数值相同，偏度、峰度和变异系数记为0。",

		"Parameter":                "参数",
		"MLE":                      "最大似然估计",
		"MoM":                      "矩估计",
		"Difference":               "差异",
		"Relative Difference (%%)": "相对差异 (%%)",

		"Note: the MLE column for this family uses moment matching, so it equals the MoM column.": "注意：该分布的MLE列采用矩匹配计算，因此与MoM列相同。",

		"Normal Distribution N(μ, σ²)":         "正态分布 N(μ, σ²)",
		"Uniform Distribution U(a, b)":         "均匀分布 U(a, b)",
		"Exponential Distribution Exp(λ)":      "指数分布 Exp(λ)",
		"Poisson Distribution Poisson(λ)":      "泊松分布 Poisson(λ)",
		"Binomial Distribution Binomial(n, p)": "二项分布 Binomial(n,p)",
		"Gamma Distribution Gamma(k, θ)":       "伽马分布 Gamma(k,θ)",
		"Beta Distribution Beta(α, β)":         "贝塔分布 Beta(α,β)",

		"Data Feature Analysis":          "数据特征分析",
		"Data Source Inference":          "数据来源推测",
		"Research Direction Suggestions": "研究方向建议",

		"Interval":                        "区间",
		"Midpoint":                        "中点",
		"Frequency":                       "频数",
		"Expected":                        "期望频数",
		"Lower Whisker":                   "下须",
		"Upper Whisker":                   "上须",
		"Lower Fence":                     "下界限",
		"Upper Fence":                     "上界限",
		"Outliers":                        "异常值",
		"Density over [%s, %s]":           "密度 [%s, %s]",
		"Category":                        "分类",
		"Percentage":                      "百分比",
		"Relative Proportion":             "相对比例",
		"Value by index":                  "按索引的数值",
		"Observed and expected frequency": "观测频数与期望频数",

		"Value and %d-point moving average by index": "数值与%d点移动平均",
	})
}
