package catalog

// Illustrative hourly prices only. Values are currency-agnostic.
var defaultTable = []regionPrices{
	{
		region: "southindia",
		sizes: []sizePrices{
			{size: "Standard_B1s", linux: 0.012, windows: 0.022},
			{size: "Standard_B2s", linux: 0.024, windows: 0.034},
			{size: "Standard_D2s_v5", linux: 0.080, windows: 0.120},
			{size: "Standard_D4s_v5", linux: 0.160, windows: 0.240},
			{size: "Standard_E2s_v5", linux: 0.095, windows: 0.135},
			{size: "Standard_F2s_v2", linux: 0.072, windows: 0.112},
		},
	},
	{
		region: "centralindia",
		sizes: []sizePrices{
			{size: "Standard_B1s", linux: 0.013, windows: 0.023},
			{size: "Standard_B2s", linux: 0.025, windows: 0.035},
			{size: "Standard_D2s_v5", linux: 0.082, windows: 0.122},
			{size: "Standard_D4s_v5", linux: 0.164, windows: 0.244},
			{size: "Standard_E2s_v5", linux: 0.097, windows: 0.137},
			{size: "Standard_F2s_v2", linux: 0.074, windows: 0.114},
		},
	},
	{
		region: "eastus",
		sizes: []sizePrices{
			{size: "Standard_B1s", linux: 0.011, windows: 0.021},
			{size: "Standard_B2s", linux: 0.023, windows: 0.033},
			{size: "Standard_D2s_v5", linux: 0.078, windows: 0.118},
			{size: "Standard_D4s_v5", linux: 0.156, windows: 0.236},
			{size: "Standard_E2s_v5", linux: 0.093, windows: 0.133},
			{size: "Standard_F2s_v2", linux: 0.070, windows: 0.110},
		},
	},
	{
		region: "westeurope",
		sizes: []sizePrices{
			{size: "Standard_B1s", linux: 0.013, windows: 0.023},
			{size: "Standard_B2s", linux: 0.025, windows: 0.035},
			{size: "Standard_D2s_v5", linux: 0.084, windows: 0.124},
			{size: "Standard_D4s_v5", linux: 0.168, windows: 0.248},
			{size: "Standard_E2s_v5", linux: 0.099, windows: 0.139},
			{size: "Standard_F2s_v2", linux: 0.076, windows: 0.116},
		},
	},
	{
		region: "southeastasia",
		sizes: []sizePrices{
			{size: "Standard_B1s", linux: 0.012, windows: 0.022},
			{size: "Standard_B2s", linux: 0.024, windows: 0.034},
			{size: "Standard_D2s_v5", linux: 0.081, windows: 0.121},
			{size: "Standard_D4s_v5", linux: 0.162, windows: 0.242},
			{size: "Standard_E2s_v5", linux: 0.096, windows: 0.136},
			{size: "Standard_F2s_v2", linux: 0.073, windows: 0.113},
		},
	},
}
