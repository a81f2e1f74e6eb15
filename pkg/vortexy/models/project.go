package models

// Project is one dataset entry of the web front end's project manifest.
type Project struct {
	// Name is the project display name.
	Name string `json:"name" yaml:"name"`
	// DataFile is the curves JSON path relative to the site root.
	DataFile string `json:"dataFile" yaml:"data_file"`
	// Title is the chart title.
	Title string `json:"title" yaml:"title"`
	// XAxisName is the chart X axis label.
	XAxisName string `json:"xAxisName" yaml:"x_axis_name"`
	// YAxisName is the chart Y axis label.
	YAxisName string `json:"yAxisName" yaml:"y_axis_name"`
	// Description is optional HTML shown under the chart.
	Description string `json:"description,omitempty" yaml:"description"`
}

// ProjectData pairs a project name with the fans parsed from its table.
type ProjectData struct {
	Name string
	Fans *FanSet
}
