package results

// DefaultRules returns the category table for the reports written by the
// characterization harness.
func DefaultRules() Rules {
	fifoCPUs := []Field{ServerCPU, ClientCPU}
	memCPU := []Field{CPU}
	return Rules{
		{
			Name:           "IntraL3 - Single FIFO",
			Pattern:        `.*_intraL3_singleFifo_L3-([0-9]+)_L3CPUA-([0-9]+)_L3CPUB-([0-9]+).csv`,
			Template:       "L3:{0} CPUA:{1} CPUB:{2}",
			FilenameGroups: []int{0},
			RowFields:      fifoCPUs,
			Kind:           FIFO,
		},
		{
			Name:           "IntraL3 - Single L3",
			Pattern:        `.*_intraL3_singleL3_L3-([0-9]+).csv`,
			Template:       "L3:{0} CPUA:{1} CPUB:{2}",
			FilenameGroups: []int{0},
			RowFields:      fifoCPUs,
			Kind:           FIFO,
		},
		{
			Name:           "IntraL3 - All Cores Paired",
			Pattern:        `.*_intraL3_allL3_startL3-([0-9]+).csv`,
			Template:       "StartL3:{0} CPU{1}->CPU{2}",
			FilenameGroups: []int{0},
			RowFields:      fifoCPUs,
			Kind:           FIFO,
		},
		{
			Name:           "InterL3 - Single FIFO",
			Pattern:        `.*_interL3_singleFifo_L3A-([0-9]+)_L3B-([0-9]+).csv`,
			Template:       "L3A:{0} L3B:{1} CPU{2}->CPU{3}",
			FilenameGroups: []int{0, 1},
			RowFields:      fifoCPUs,
			Kind:           FIFO,
		},
		{
			Name:           "InterL3 - Single L3 Pair (All Cores Paired)",
			Pattern:        `.*_interL3_singleL3_L3A-([0-9]+)_L3B-([0-9]+).csv`,
			Template:       "L3A:{0} L3B:{1} CPU{2}->CPU{3}",
			FilenameGroups: []int{0, 1},
			RowFields:      fifoCPUs,
			Kind:           FIFO,
		},
		{
			Name:           "InterL3 - All L3s (All Cores Paired)",
			Pattern:        `.*_interL3_AllL3_startL3-([0-9]+).csv`,
			Template:       "StartL3:{0} CPU{1}->CPU{2}",
			FilenameGroups: []int{0},
			RowFields:      fifoCPUs,
			Kind:           FIFO,
		},
		{
			Name:           "InterL3 - One To Multiple L3",
			Pattern:        `.*interL3_OneToMultiple_fromL3-([0-9]+).csv`,
			Template:       "FromL3:{0} CPU{1}->CPU{2}",
			FilenameGroups: []int{0},
			RowFields:      fifoCPUs,
			Kind:           FIFO,
		},
		{
			Name:           "Memory - Read Single Core",
			Pattern:        `.*_memory_read_singleCore_L3-([0-9]+).csv`,
			Template:       "L3:{0} CPU{1}",
			FilenameGroups: []int{0},
			RowFields:      memCPU,
			Kind:           Memory,
		},
		{
			Name:           "Memory - Read All Cores in L3",
			Pattern:        `.*_memory_read_singleL3_L3-([0-9]+).csv`,
			Template:       "L3:{0} CPU{1}",
			FilenameGroups: []int{0},
			RowFields:      memCPU,
			Kind:           Memory,
		},
		{
			Name:           "Memory - Write Single Core",
			Pattern:        `.*_memory_write_singleCore_L3-([0-9]+).csv`,
			Template:       "L3:{0} CPU{1}",
			FilenameGroups: []int{0},
			RowFields:      memCPU,
			Kind:           Memory,
		},
		{
			Name:           "Memory - Write All Cores in L3",
			Pattern:        `.*_memory_write_singleL3_L3-([0-9]+).csv`,
			Template:       "L3:{0} CPU{1}",
			FilenameGroups: []int{0},
			RowFields:      memCPU,
			Kind:           Memory,
		},
	}
}
