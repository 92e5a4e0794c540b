package mock

// Canned analysis reports keyed by task type. The wording is fixture data
// consumed by the GUI, not logic; keep it byte-for-byte stable.

const vulnerabilityAnalysisReport = `VULNERABILITY ANALYSIS REPORT

RISK ASSESSMENT: HIGH
This SQL injection vulnerability poses a significant risk to the application and underlying database. The vulnerability allows attackers to manipulate database queries, potentially leading to unauthorized data access, modification, or deletion.

BUSINESS IMPACT:
- Data breach risk: HIGH
- Service disruption: MEDIUM  
- Compliance violations: HIGH (GDPR, PCI-DSS)
- Financial impact: Estimated $50K-$500K

TECHNICAL DETAILS:
The vulnerability exists in the user input validation layer where SQL queries are constructed using string concatenation without proper parameterization.

REMEDIATION RECOMMENDATIONS:
1. IMMEDIATE: Implement parameterized queries/prepared statements
2. Deploy input validation and sanitization
3. Apply principle of least privilege to database accounts
4. Implement Web Application Firewall (WAF) rules
5. Conduct security code review

CONFIDENCE: 92%`

const threatModelingReport = `THREAT MODELING ANALYSIS

IDENTIFIED THREATS:
1. SQL Injection Attacks
   - Likelihood: HIGH
   - Impact: CRITICAL
   - Attack Vector: Web application input fields

2. Cross-Site Scripting (XSS)
   - Likelihood: MEDIUM
   - Impact: HIGH
   - Attack Vector: User-generated content

3. Authentication Bypass
   - Likelihood: LOW
   - Impact: CRITICAL
   - Attack Vector: Session management flaws

ATTACK SCENARIOS:
- Scenario 1: Attacker exploits SQL injection to extract customer data
- Scenario 2: Malicious script injection leads to session hijacking
- Scenario 3: Privilege escalation through authentication flaws

SECURITY CONTROLS:
- Input validation and output encoding
- Multi-factor authentication
- Session management improvements
- Regular security assessments

CONFIDENCE: 88%`

const scanOptimizationReport = `SCAN OPTIMIZATION RECOMMENDATIONS

CURRENT SCAN EFFICIENCY: 67%

OPTIMIZATION STRATEGIES:
1. Prioritize high-risk targets (web servers, databases)
2. Reduce scan intensity during business hours
3. Implement intelligent port selection
4. Use cached results for recent scans

RECOMMENDED SCAN ORDER:
1. 192.168.1.100 (Web Server) - Priority: HIGH
2. 192.168.1.50 (Database) - Priority: HIGH
3. 192.168.1.10-49 (Workstations) - Priority: MEDIUM

PERFORMANCE IMPROVEMENTS:
- Estimated time reduction: 35%
- Resource utilization: Optimized
- Detection accuracy: Maintained at 95%+

CONFIDENCE: 91%`

var reports = map[string]string{
	"vulnerability_analysis": vulnerabilityAnalysisReport,
	"threat_modeling":        threatModelingReport,
	"scan_optimization":      scanOptimizationReport,
}

func reportFor(taskType string) string {
	if report, ok := reports[taskType]; ok {
		return report
	}
	return "AI analysis completed successfully."
}
