package xmgid

// Components ID 按字节布局拆分后的三个只读十六进制视图。
type Components struct {
	// Timestamp 时间戳前缀 [0,4)，8 个十六进制字符
	Timestamp string `json:"timestamp"`
	// ProcessUnique 进程唯一段 [4,9)，10 个十六进制字符
	ProcessUnique string `json:"process_unique"`
	// Counter 计数器段 [9,12)，6 个十六进制字符
	Counter string `json:"counter"`
}

// TimestampHex 返回时间戳前缀的十六进制文本。
func (id ID) TimestampHex() string {
	return string(appendHex(make([]byte, 0, 2*TimestampLen), id[:processUniqueOffset]))
}

// ProcessUniqueHex 返回进程唯一段的十六进制文本。
func (id ID) ProcessUniqueHex() string {
	return string(appendHex(make([]byte, 0, 2*ProcessUniqueLen), id[processUniqueOffset:counterOffset]))
}

// CounterHex 返回计数器段的十六进制文本。
func (id ID) CounterHex() string {
	return string(appendHex(make([]byte, 0, 2*CounterLen), id[counterOffset:]))
}

// Decompose 一次性返回三个分段视图。
//
// 目前仅提供原始十六进制视图，不解释时间戳语义。
func (id ID) Decompose() Components {
	return Components{
		Timestamp:     id.TimestampHex(),
		ProcessUnique: id.ProcessUniqueHex(),
		Counter:       id.CounterHex(),
	}
}
