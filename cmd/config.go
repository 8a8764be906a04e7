package cmd

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	BaseServiceFeeMinor    string
	PerItemServiceFeeMinor string
	ServiceFeeCapMinor     string
	DeliveryFeeMinor       string
	VATRate                string
	OrderMaxAge            string
}
