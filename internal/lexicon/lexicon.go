// Package lexicon holds the static configuration the scoring engine reads:
// metric weights, quality-tier thresholds, the SMART keyword table, indicator
// word lists, and the hard/soft-skill keyword sets. A Lexicon is constructed
// explicitly (Default or Load) and injected into the engine; it is never
// mutated after construction.
package lexicon

import (
	"fmt"
	"regexp"
)

// Weights are the per-metric contributions to the overall score. They are not
// required to sum to 1.0, though the defaults do.
type Weights struct {
	Clarity       float64 `mapstructure:"clarity" yaml:"clarity"`
	Specificity   float64 `mapstructure:"specificity" yaml:"specificity"`
	Completeness  float64 `mapstructure:"completeness" yaml:"completeness"`
	Structure     float64 `mapstructure:"structure" yaml:"structure"`
	SMARTCriteria float64 `mapstructure:"smart_criteria" yaml:"smart_criteria"`
}

// Thresholds are the ascending tier cut points: overall >= High is "Alta",
// overall >= Medium is "Média", anything below is "Baixa".
type Thresholds struct {
	Medium float64 `mapstructure:"medium" yaml:"medium"`
	High   float64 `mapstructure:"high" yaml:"high"`
}

// SMARTKeywords maps each of the five SMART categories to its keyword list.
// Categories are independent; a category scores when any of its keywords
// appears in the text.
type SMARTKeywords struct {
	Specific   []string `mapstructure:"specific" yaml:"specific"`
	Measurable []string `mapstructure:"measurable" yaml:"measurable"`
	Achievable []string `mapstructure:"achievable" yaml:"achievable"`
	Relevant   []string `mapstructure:"relevant" yaml:"relevant"`
	TimeBound  []string `mapstructure:"time_bound" yaml:"time_bound"`
}

// Categories returns the keyword lists in canonical order.
func (s SMARTKeywords) Categories() [][]string {
	return [][]string{s.Specific, s.Measurable, s.Achievable, s.Relevant, s.TimeBound}
}

// Lexicon is the full read-only configuration of the engine.
type Lexicon struct {
	Weights    Weights    `mapstructure:"weights" yaml:"weights"`
	Thresholds Thresholds `mapstructure:"thresholds" yaml:"thresholds"`

	// MinWords is the gating minimum for text validation; every metric
	// short-circuits to zero below it.
	MinWords int `mapstructure:"min_words" yaml:"min_words"`

	// SMARTIncrement is the per-category score added when a SMART category
	// matches.
	SMARTIncrement float64 `mapstructure:"smart_increment" yaml:"smart_increment"`

	SMARTKeywords        SMARTKeywords `mapstructure:"smart_keywords" yaml:"smart_keywords"`
	PositiveIndicators   []string      `mapstructure:"positive_indicators" yaml:"positive_indicators"`
	NegativeIndicators   []string      `mapstructure:"negative_indicators" yaml:"negative_indicators"`
	SpecificityKeywords  []string      `mapstructure:"specificity_keywords" yaml:"specificity_keywords"`
	CompletenessElements []string      `mapstructure:"completeness_elements" yaml:"completeness_elements"`
	Connectives          []string      `mapstructure:"connectives" yaml:"connectives"`

	// TechnicalTermPatterns feed the feature extractor; whole-word regexes.
	TechnicalTermPatterns []string `mapstructure:"technical_term_patterns" yaml:"technical_term_patterns"`

	HardSkillKeywords    []string `mapstructure:"hard_skill_keywords" yaml:"hard_skill_keywords"`
	SoftSkillKeywords    []string `mapstructure:"soft_skill_keywords" yaml:"soft_skill_keywords"`
	TechnicalPatterns    []string `mapstructure:"technical_patterns" yaml:"technical_patterns"`
	TechnicalIndicators  []string `mapstructure:"technical_indicators" yaml:"technical_indicators"`
	BehavioralIndicators []string `mapstructure:"behavioral_indicators" yaml:"behavioral_indicators"`
	SoftSkillVerbs       []string `mapstructure:"soft_skill_verbs" yaml:"soft_skill_verbs"`

	termRE    []*regexp.Regexp
	patternRE []*regexp.Regexp
}

// Default returns the canonical lexicon, tuned for Portuguese-language
// development plans.
func Default() *Lexicon {
	lex := &Lexicon{
		Weights: Weights{
			Clarity:       0.25,
			Specificity:   0.25,
			Completeness:  0.25,
			Structure:     0.15,
			SMARTCriteria: 0.10,
		},
		Thresholds: Thresholds{
			Medium: 0.3,
			High:   0.6,
		},
		MinWords:       3,
		SMARTIncrement: 0.15,
		SMARTKeywords: SMARTKeywords{
			Specific:   []string{"específico", "especifica", "claro", "preciso", "definido", "detalhado"},
			Measurable: []string{"medir", "mensurar", "métrica", "indicador", "quantidade", "percentual", "%", "prazo"},
			Achievable: []string{"possível", "viável", "realista", "alcançável", "factível"},
			Relevant:   []string{"importante", "relevante", "necessário", "estratégico", "essencial"},
			TimeBound:  []string{"prazo", "até", "em", "durante", "mês", "ano", "trimestre", "semestre", "data"},
		},
		PositiveIndicators: []string{
			"implementar", "desenvolver", "executar", "realizar", "concluir",
			"atingir", "alcançar", "obter", "conseguir", "finalizar",
			"criar", "construir", "estabelecer", "melhorar", "aprimorar",
		},
		NegativeIndicators: []string{
			"não sei", "talvez", "pode ser", "acho que", "vou tentar",
			"espero", "gostaria", "pretendo", "deveria", "poderia",
		},
		SpecificityKeywords:  []string{"específico", "detalhado", "preciso", "exato", "claro"},
		CompletenessElements: []string{"quando", "como", "onde", "o que", "por que", "quem"},
		Connectives:          []string{"e", "mas", "porém", "então", "assim", "portanto", "além disso"},
		TechnicalTermPatterns: []string{
			`\bsap\b`, `\bsistema\b`, `\bprocesso\b`, `\bmódulo\b`,
			`\bcurso\b`, `\btreinamento\b`, `\bhabilidade\b`, `\bcompetência\b`,
		},
		HardSkillKeywords: []string{
			"excel", "powerbi", "power bi", "tableau", "sql", "python", "java", "javascript",
			"sap", "oracle", "salesforce", "autocad", "photoshop", "illustrator", "figma",
			"contabilidade", "financeiro", "juridico", "engenharia", "medicina", "enfermagem",
			"programacao", "programação", "desenvolvimento", "sistema", "software", "hardware",
			"rede", "servidor", "banco de dados", "algoritmo", "machine learning", "ia",
			"inteligencia artificial", "cloud", "aws", "azure", "google cloud", "docker",
			"kubernetes", "linux", "windows", "macos", "cisco", "microsoft", "adobe",
			"marketing digital", "seo", "sem", "google ads", "facebook ads", "analytics",
			"certificacao", "certificação", "norma", "iso", "pmp", "scrum", "agile",
			"lean", "six sigma", "itil", "cobit", "cisa", "cissp", "pci", "lgpd",
			"legislacao", "legislação", "tributario", "tributário", "trabalhista",
			"idioma", "ingles", "inglês", "espanhol", "frances", "francês", "alemao", "alemão",
			"operacao", "operação", "producao", "produção", "qualidade", "processo",
			"ferramenta", "equipamento", "maquina", "máquina", "tecnico", "técnico",
			"curso", "treinamento", "capacitacao", "capacitação", "workshop",
		},
		SoftSkillKeywords: []string{
			"lideranca", "liderança", "comunicacao", "comunicação", "trabalho em equipe",
			"colaboracao", "colaboração", "empatia", "inteligencia emocional",
			"inteligência emocional", "criatividade", "inovacao", "inovação",
			"resolucao de problemas", "resolução de problemas", "pensamento critico",
			"pensamento crítico", "adaptabilidade", "flexibilidade", "resiliencia",
			"resiliência", "proatividade", "iniciativa", "autonomia", "responsabilidade",
			"etica", "ética", "honestidade", "integridade", "confianca", "confiança",
			"motivacao", "motivação", "engajamento", "dedicacao", "dedicação",
			"organizacao", "organização", "planejamento", "gestao do tempo",
			"gestão do tempo", "priorização", "foco", "concentracao", "concentração",
			"paciencia", "paciência", "tolerancia", "tolerância", "diplomacia",
			"negociacao", "negociação", "persuasao", "persuasão", "influencia",
			"influência", "carisma", "networking", "relacionamento", "interpessoal",
			"feedback", "escuta ativa", "observacao", "observação", "analise",
			"análise", "síntese", "sintese", "julgamento", "tomada de decisao",
			"tomada de decisão", "visao estrategica", "visão estratégica",
			"orientacao para resultados", "orientação para resultados", "mentoria",
		},
		TechnicalPatterns: []string{
			`\bcertificaç[ãa]o\s+\w+`,
			`\bcurso\s+(?:de|em)\s+\w+`,
			`\bsistema\s+\w+`,
			`\bferramenta\s+\w+`,
			`\bsoftware\s+\w+`,
			`\btecnologia\s+\w+`,
			`\bmódulo\s+\w+`,
			`\bplataforma\s+\w+`,
			`\bidioma\s+\w+`,
			`\bnível\s+(?:básico|intermediário|avançado)`,
			`\b(?:excel|sap|python|java|sql)\b`,
			`\b(?:aws|azure|oracle|salesforce)\b`,
		},
		TechnicalIndicators: []string{
			"certificaç", "curso", "treinamento", "sistema", "ferramenta",
			"software", "tecnologia", "técnic", "operaç", "process", "módulo",
			"versão", "nível", "proficiência", "dominar", "aplicar",
		},
		BehavioralIndicators: []string{
			"desenvolv", "melhor", "aprimor", "fortale", "habilidade",
			"competência", "comportament", "atitude", "postura", "relacionament",
			"capacidade", "aptidão", "interpessoal", "social", "emocional",
		},
		SoftSkillVerbs: []string{
			"comunicar", "liderar", "colaborar", "influenciar", "motivar",
			"inspirar", "orientar", "mentorear", "negociar", "persuadir",
		},
	}
	if err := lex.compile(); err != nil {
		panic(fmt.Sprintf("default lexicon: %v", err))
	}
	return lex
}

// Validate checks the structural invariants a loaded lexicon must satisfy.
// It is called by Load; Default is validated by construction.
func (l *Lexicon) Validate() error {
	if l.MinWords < 1 {
		return fmt.Errorf("min_words must be at least 1, got %d", l.MinWords)
	}
	if l.Thresholds.Medium < 0 || l.Thresholds.High > 1 {
		return fmt.Errorf("thresholds must lie in [0,1], got medium=%v high=%v", l.Thresholds.Medium, l.Thresholds.High)
	}
	if l.Thresholds.Medium >= l.Thresholds.High {
		return fmt.Errorf("thresholds must be ascending, got medium=%v high=%v", l.Thresholds.Medium, l.Thresholds.High)
	}
	if l.SMARTIncrement <= 0 || l.SMARTIncrement > 0.2 {
		return fmt.Errorf("smart_increment must be in (0, 0.2], got %v", l.SMARTIncrement)
	}
	for i, cat := range l.SMARTKeywords.Categories() {
		if len(cat) == 0 {
			return fmt.Errorf("smart_keywords category %d is empty", i)
		}
	}
	return l.compile()
}

// TechnicalTermRegexps returns the compiled technical-term patterns used by
// feature extraction.
func (l *Lexicon) TechnicalTermRegexps() []*regexp.Regexp {
	return l.termRE
}

// TechnicalPatternRegexps returns the compiled skill-classification patterns.
func (l *Lexicon) TechnicalPatternRegexps() []*regexp.Regexp {
	return l.patternRE
}

func (l *Lexicon) compile() error {
	l.termRE = make([]*regexp.Regexp, 0, len(l.TechnicalTermPatterns))
	for _, p := range l.TechnicalTermPatterns {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return fmt.Errorf("technical term pattern %q: %w", p, err)
		}
		l.termRE = append(l.termRE, re)
	}
	l.patternRE = make([]*regexp.Regexp, 0, len(l.TechnicalPatterns))
	for _, p := range l.TechnicalPatterns {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return fmt.Errorf("technical pattern %q: %w", p, err)
		}
		l.patternRE = append(l.patternRE, re)
	}
	return nil
}
