package config

// Config is the top-level reelsite configuration, corresponding to
// .reelsite.yml.
type Config struct {
	SupabaseURL   string `yaml:"supabase_url" koanf:"supabase_url"`
	SupabaseKey   string `yaml:"supabase_key" koanf:"supabase_key"`
	Port          int    `yaml:"port" koanf:"port"`
	DataDir       string `yaml:"data_dir" koanf:"data_dir"`
	AdminPassword string `yaml:"admin_password" koanf:"admin_password"`
	LogLevel      string `yaml:"log_level" koanf:"log_level"`
	AllowAllCORS  bool   `yaml:"allow_all_cors" koanf:"allow_all_cors"`
}
