// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package insight

import (
	"golang.org/x/text/language"

	"github.com/statteach/statlab/internal/i18n"
)

func init() {
	i18n.Register(language.Chinese, map[string]string{
		"Data distribution is approximately symmetric, consistent with normal distribution": "数据分布近似对称，符合正态分布特征",
		"Data shows right-skewed distribution with a few larger values":                     "数据呈右偏分布，存在少量较大值",
		"Data shows left-skewed distribution with a few smaller values":                     "数据呈左偏分布，存在少量较小值",
		"Data kurtosis is close to normal distribution":                                     "数据峰度接近正态分布",
		"Data shows leptokurtic distribution, with values concentrated in the middle":       "数据呈现高峰态，中间值集中",
		"Data shows platykurtic distribution, with values relatively dispersed":             "数据呈现低峰态，分布较为分散",
		"Data shows very low variability, high consistency":                                 "数据变异程度很小，一致性高",
		"Data shows moderate variability":                                                   "数据变异程度适中",
		"Data shows high variability, strong dispersion":                                    "数据变异程度较大，离散性强",
		"Data ranges between 0-1, possibly proportional data":                               "数据范围在0-1之间，可能是比例数据",
		"Data is non-negative integer with small range, possibly count data":                "数据为非负整数且范围较小，可能是计数数据",
		"Data has moderate mean and standard deviation, possibly measurement data":          "数据均值和标准差适中，可能是测量数据",
		"%d values lie beyond the quartile fences and may be outliers":                      "有%d个数据点超出四分位界限，可能是异常值",

		"These data may come from probabilities, proportions, or normalized measurements, such as market share, investment returns, or normalized test scores.":                          "这些数据可能来源于概率、比例或标准化后的测量结果，如市场份额、投资回报率或归一化的测试分数。",
		"These data may come from counting processes, such as user visits, product sales, event occurrences, or defect counts in quality control.":                                       "这些数据可能来源于计数过程，如用户访问量、产品销量、事件发生次数或质量控制中的缺陷数量。",
		"These data may come from financial indicators, demographic data, or physical measurements, such as stock prices, income levels, or temperature measurements.":                   "这些数据可能来源于金融指标、人口统计数据或物理测量，如股票价格、收入水平或温度测量。",
		"These data may come from scientific experiments, survey research, or business analysis continuous variable measurements, such as time, length, weight, or satisfaction scores.": "这些数据可能来源于科学实验、调查研究或业务分析中的连续变量测量，如时间、长度、重量或满意度评分。",

		"%d. Conduct hypothesis testing to verify if the data fits specific theoretical distributions":  "%d. 进行假设检验，验证数据是否符合特定的理论分布",
		"%d. Apply regression analysis to explore relationships between these data and other variables": "%d. 应用回归分析，探索这些数据与其他变量的关系",
		"%d. Perform time series analysis (if the data has a time dimension)":                           "%d. 进行时间序列分析（如果数据有时间维度）",
		"%d. Apply cluster analysis to identify natural groupings in the data":                          "%d. 应用聚类分析，识别数据中的自然分组",
		"%d. Conduct outlier detection to identify potential anomalous data points":                     "%d. 进行异常值检测，识别潜在的异常数据点",

		"MLE and MoM estimates are almost identical, indicating that the data fit the selected distribution well.":  "MLE和MoM估计结果几乎完全一致，说明数据很好地符合所选分布。",
		"MLE and MoM estimates are very close; the difference is within an acceptable range.":                       "MLE和MoM估计结果非常接近，差异在可接受范围内。",
		"MLE and MoM estimates differ somewhat; consider whether the data fully fit the selected distribution.":     "MLE和MoM估计结果存在一定差异，可能需要考虑数据是否完全符合所选分布。",
		"MLE and MoM estimates differ considerably; check the data distribution or try another distribution model.": "MLE和MoM估计结果差异较大，建议检查数据分布或尝试其他分布模型。",
	})
}
