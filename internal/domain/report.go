package domain

// HeadlineMetric é um indicador de destaque exibido no topo do painel
type HeadlineMetric struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Delta string `json:"delta,omitempty"`
}

// ComparisonRow é uma linha da tabela de comparação (atual / meta / diferença)
type ComparisonRow struct {
	Item       string `json:"item"`
	Current    string `json:"current"`
	Target     string `json:"target"`
	Difference string `json:"difference"`
	Emphasis   bool   `json:"emphasis,omitempty"`
}

// ChartBar é uma barra do gráfico horizontal de receita
type ChartBar struct {
	Label        string  `json:"label"`
	Value        float64 `json:"value"`
	Color        string  `json:"color"`
	WidthPercent float64 `json:"width_percent"`
}

// ComparisonReport é o modelo de exibição independente do renderizador
type ComparisonReport struct {
	Headline []HeadlineMetric `json:"headline"`
	Rows     []ComparisonRow  `json:"rows"`
	Chart    []ChartBar       `json:"chart"`
}
